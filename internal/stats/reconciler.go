package stats

import (
	"context"
	"log"

	"github.com/saveup-app/saveup/internal/model"
)

// SessionProvider yields the currently authenticated user, if any.
type SessionProvider interface {
	// UserID returns the authenticated user id and true, or "" and false
	// when signed out.
	UserID() (string, bool)
}

// ProfileStore is the remote per-user profile row the aggregates are
// mirrored into.
type ProfileStore interface {
	// UpdateStats overwrites exactly the six aggregate columns for the
	// given user. It must be an overwrite, never an increment, so that
	// redundant calls are idempotent.
	UpdateStats(ctx context.Context, userID string, stats model.DecisionStats) error
}

// Reconciler recomputes aggregates from a full ledger snapshot and pushes
// them remotely. Because every sync recomputes from the local source of
// truth instead of applying deltas, a failed or skipped sync is repaired by
// any later successful one.
type Reconciler struct {
	session SessionProvider
	remote  ProfileStore
}

// NewReconciler returns a reconciler over the given session and remote
// profile store.
func NewReconciler(session SessionProvider, remote ProfileStore) *Reconciler {
	return &Reconciler{session: session, remote: remote}
}

// Sync computes stats for the snapshot and writes them to the remote
// profile. Syncing while signed out is a silent no-op; that state is
// expected during sign-out races, not an error.
func (r *Reconciler) Sync(ctx context.Context, decisions []model.SpendingDecision) error {
	userID, ok := r.session.UserID()
	if !ok {
		return nil
	}
	return r.remote.UpdateStats(ctx, userID, Compute(decisions))
}

// SyncDetached runs Sync in the background, logging and swallowing any
// failure. The local ledger stays authoritative either way.
func (r *Reconciler) SyncDetached(decisions []model.SpendingDecision) {
	go func() {
		if err := r.Sync(context.Background(), decisions); err != nil {
			log.Printf("saveup: background stats sync: %v", err)
		}
	}()
}
