package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/draftforge/dynasty/go/internal/draft/engine"
)

type fakeSource struct {
	mu  sync.Mutex
	due []uuid.UUID
}

func (f *fakeSource) ListDueDraftIDs(ctx context.Context, limit int32) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uuid.UUID, len(f.due))
	copy(out, f.due)
	return out, nil
}

type fakeTicker struct {
	mu    sync.Mutex
	calls map[uuid.UUID]int
	done  chan uuid.UUID
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{calls: make(map[uuid.UUID]int), done: make(chan uuid.UUID, 64)}
}

func (f *fakeTicker) Tick(ctx context.Context, draftID uuid.UUID) (engine.TickResult, error) {
	f.mu.Lock()
	f.calls[draftID]++
	f.mu.Unlock()
	f.done <- draftID
	return engine.TickResult{Action: engine.ActionAutoPick, Reason: engine.ReasonTimeout}, nil
}

func (f *fakeTicker) count(draftID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[draftID]
}

func TestSweepDispatchesEachDueDraft(t *testing.T) {
	d1, d2 := uuid.New(), uuid.New()
	source := &fakeSource{due: []uuid.UUID{d1, d2}}
	ticker := newFakeTicker()

	s := New(source, ticker, DefaultConfig(), clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go s.worker(ctx, &wg, i)
	}

	s.sweep(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-ticker.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for ticks")
		}
	}
	if ticker.count(d1) != 1 || ticker.count(d2) != 1 {
		t.Errorf("expected one tick each, got %d and %d", ticker.count(d1), ticker.count(d2))
	}

	cancel()
	wg.Wait()
}

func TestSweepDeduplicatesInFlightDrafts(t *testing.T) {
	d := uuid.New()
	source := &fakeSource{due: []uuid.UUID{d}}
	ticker := newFakeTicker()

	s := New(source, ticker, DefaultConfig(), clockwork.NewFakeClock())

	// No workers draining: the draft stays in flight after the first
	// sweep, so the second sweep must not enqueue it again.
	ctx := context.Background()
	s.sweep(ctx)
	s.sweep(ctx)

	if got := len(s.workCh); got != 1 {
		t.Errorf("expected 1 queued draft, got %d", got)
	}
}
