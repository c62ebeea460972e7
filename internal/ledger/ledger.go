package ledger

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/saveup-app/saveup/internal/model"
)

// Syncer pushes recomputed aggregate statistics for the given ledger
// snapshot to the remote profile store.
type Syncer interface {
	Sync(ctx context.Context, decisions []model.SpendingDecision) error
}

// Ledger serializes all mutating operations on one decision store through a
// single mutex and triggers statistics reconciliation after each mutation.
//
// Each mutation comes in two flavors: the plain form detaches
// reconciliation into a background goroutine, the *AndSync form waits for
// it. In both cases a reconciliation failure is logged and swallowed;
// only storage errors propagate to the caller. The local ledger stays
// authoritative; the remote aggregate is best-effort and self-heals on the
// next successful sync.
type Ledger struct {
	mu     sync.Mutex
	store  *Store
	syncer Syncer

	// pending counts detached syncs still in flight; Flush waits on it.
	pending sync.WaitGroup
}

// New wraps a store and a reconciler into a serialized ledger. syncer may
// be nil, in which case mutations skip reconciliation entirely.
func New(store *Store, syncer Syncer) *Ledger {
	return &Ledger{store: store, syncer: syncer}
}

// Store exposes the underlying read-only query surface.
func (l *Ledger) Store() *Store {
	return l.store
}

// Append records a new decision and reconciles in the background.
func (l *Ledger) Append(ctx context.Context, in Input) (model.SpendingDecision, error) {
	return l.append(ctx, in, false)
}

// AppendAndSync records a new decision and waits for reconciliation to
// finish before returning.
func (l *Ledger) AppendAndSync(ctx context.Context, in Input) (model.SpendingDecision, error) {
	return l.append(ctx, in, true)
}

func (l *Ledger) append(ctx context.Context, in Input, wait bool) (model.SpendingDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, err := l.store.Append(ctx, in)
	if err != nil {
		return model.SpendingDecision{}, err
	}
	l.reconcile(ctx, wait)
	return d, nil
}

// Update merges the patch into an existing decision and reconciles in the
// background. Unknown ids are silent no-ops.
func (l *Ledger) Update(ctx context.Context, id string, p Patch) error {
	return l.update(ctx, id, p, false)
}

// UpdateAndSync merges the patch and waits for reconciliation.
func (l *Ledger) UpdateAndSync(ctx context.Context, id string, p Patch) error {
	return l.update(ctx, id, p, true)
}

func (l *Ledger) update(ctx context.Context, id string, p Patch, wait bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Update(ctx, id, p); err != nil {
		return err
	}
	l.reconcile(ctx, wait)
	return nil
}

// Resolve transitions a let_me_think decision to its final type. The
// reminder timestamp is retained on the record but no longer meaningful
// once the type changes.
func (l *Ledger) Resolve(ctx context.Context, id string, final model.DecisionType) error {
	return l.UpdateAndSync(ctx, id, Patch{DecisionType: &final})
}

// Remove deletes a decision and reconciles in the background. Unknown ids
// are silent no-ops.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	return l.remove(ctx, id, false)
}

// RemoveAndSync deletes a decision and waits for reconciliation.
func (l *Ledger) RemoveAndSync(ctx context.Context, id string) error {
	return l.remove(ctx, id, true)
}

func (l *Ledger) remove(ctx context.Context, id string, wait bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Remove(ctx, id); err != nil {
		return err
	}
	l.reconcile(ctx, wait)
	return nil
}

// Clear empties the ledger and waits for the all-zero aggregate to be
// pushed remotely.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Clear(ctx); err != nil {
		return err
	}
	l.reconcile(ctx, true)
	return nil
}

// All returns every decision in insertion order.
func (l *Ledger) All(ctx context.Context) ([]model.SpendingDecision, error) {
	return l.store.All(ctx)
}

// ActiveReminders returns pending let_me_think decisions whose reminder is
// still in the future.
func (l *Ledger) ActiveReminders(ctx context.Context, now time.Time) ([]model.SpendingDecision, error) {
	return l.store.ActiveReminders(ctx, now)
}

// Flush blocks until all detached reconciliations have completed.
func (l *Ledger) Flush() {
	l.pending.Wait()
}

// reconcile recomputes and pushes aggregates for the current ledger
// contents. Called with l.mu held.
func (l *Ledger) reconcile(ctx context.Context, wait bool) {
	if l.syncer == nil {
		return
	}

	decisions, err := l.store.All(ctx)
	if err != nil {
		log.Printf("saveup: reading ledger for sync: %v", err)
		return
	}

	if wait {
		if err := l.syncer.Sync(ctx, decisions); err != nil {
			log.Printf("saveup: syncing stats: %v", err)
		}
		return
	}

	l.pending.Add(1)
	go func() {
		defer l.pending.Done()
		// Detached from the caller's context on purpose: a sync in
		// flight when the caller moves on is allowed to finish.
		// Concurrent detached syncs may land out of order, so a stale
		// snapshot can briefly overwrite a newer remote aggregate.
		// Each push carries a full recompute, so the next mutation or
		// an explicit sync restores the remote row.
		if err := l.syncer.Sync(context.Background(), decisions); err != nil {
			log.Printf("saveup: syncing stats: %v", err)
		}
	}()
}
