package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/saveup-app/saveup/internal/model"
)

type fakeSession struct {
	userID string
}

func (f *fakeSession) UserID() (string, bool) {
	return f.userID, f.userID != ""
}

type fakeRemote struct {
	updates []model.DecisionStats
	userIDs []string
	err     error
}

func (f *fakeRemote) UpdateStats(_ context.Context, userID string, stats model.DecisionStats) error {
	if f.err != nil {
		return f.err
	}
	f.userIDs = append(f.userIDs, userID)
	f.updates = append(f.updates, stats)
	return nil
}

func TestSync_WritesComputedStats(t *testing.T) {
	remote := &fakeRemote{}
	r := NewReconciler(&fakeSession{userID: "user-1"}, remote)

	decisions := []model.SpendingDecision{
		{ID: "a", DecisionType: model.DecisionDontBuy, ItemPrice: 30, WorkHours: 2},
	}
	if err := r.Sync(context.Background(), decisions); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if len(remote.updates) != 1 {
		t.Fatalf("got %d remote updates, want 1", len(remote.updates))
	}
	if remote.userIDs[0] != "user-1" {
		t.Errorf("update keyed by %q, want user-1", remote.userIDs[0])
	}
	if remote.updates[0].TotalMoneySaved != 30 {
		t.Errorf("TotalMoneySaved = %v, want 30", remote.updates[0].TotalMoneySaved)
	}
}

func TestSync_NoSessionIsSilentNoop(t *testing.T) {
	remote := &fakeRemote{}
	r := NewReconciler(&fakeSession{}, remote)

	if err := r.Sync(context.Background(), nil); err != nil {
		t.Fatalf("Sync while signed out: %v", err)
	}
	if len(remote.updates) != 0 {
		t.Errorf("signed-out sync wrote %d updates, want 0", len(remote.updates))
	}
}

func TestSync_Idempotent(t *testing.T) {
	remote := &fakeRemote{}
	r := NewReconciler(&fakeSession{userID: "user-1"}, remote)

	decisions := []model.SpendingDecision{
		{ID: "a", DecisionType: model.DecisionBuy, ItemPrice: 50, WorkHours: 2},
		{ID: "b", DecisionType: model.DecisionSave, ItemPrice: 25, WorkHours: 1},
	}

	if err := r.Sync(context.Background(), decisions); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	if err := r.Sync(context.Background(), decisions); err != nil {
		t.Fatalf("second Sync: %v", err)
	}

	if len(remote.updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(remote.updates))
	}
	if remote.updates[0] != remote.updates[1] {
		t.Errorf("redundant sync drifted: %+v vs %+v", remote.updates[0], remote.updates[1])
	}
}

func TestSync_RemoteErrorPropagatesToDirectCaller(t *testing.T) {
	wantErr := errors.New("remote down")
	r := NewReconciler(&fakeSession{userID: "user-1"}, &fakeRemote{err: wantErr})

	if err := r.Sync(context.Background(), nil); !errors.Is(err, wantErr) {
		t.Errorf("Sync error = %v, want %v", err, wantErr)
	}
}

func TestSync_ClearPushesZeros(t *testing.T) {
	remote := &fakeRemote{}
	r := NewReconciler(&fakeSession{userID: "user-1"}, remote)

	if err := r.Sync(context.Background(), []model.SpendingDecision{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if len(remote.updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(remote.updates))
	}
	if !remote.updates[0].IsZero() {
		t.Errorf("empty-ledger sync wrote %+v, want all zeros", remote.updates[0])
	}
}
