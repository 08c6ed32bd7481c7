package eventbus

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/events"
)

// recordingDBTX captures exec calls so staging can be asserted without a
// database.
type recordingDBTX struct {
	execs []string
	fail  error
}

func (r *recordingDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.execs = append(r.execs, query)
	return nil, nil
}

func (r *recordingDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

type recordingPublisher struct {
	published []events.Type
	failOn    events.Type
}

func (p *recordingPublisher) Publish(ctx context.Context, event Event) error {
	if event.Type == p.failOn && p.failOn != "" {
		return errors.New("bus unavailable")
	}
	p.published = append(p.published, event.Type)
	return nil
}

func TestBatchStagesEveryEvent(t *testing.T) {
	dbtx := &recordingDBTX{}
	q := db.New(dbtx)
	batch := NewBatch(uuid.New())

	ctx := context.Background()
	if err := batch.Add(ctx, q, events.TypeDraftPick, events.DraftPickPayload{PickNumber: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := batch.Add(ctx, q, events.TypeDraftNextPick, events.DraftNextPickPayload{CurrentPick: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if len(dbtx.execs) != 2 {
		t.Errorf("expected 2 outbox inserts, got %d", len(dbtx.execs))
	}
	if batch.Len() != 2 {
		t.Errorf("expected 2 pending events, got %d", batch.Len())
	}
}

func TestBatchAddFailsWhenStagingFails(t *testing.T) {
	dbtx := &recordingDBTX{fail: errors.New("constraint violation")}
	q := db.New(dbtx)
	batch := NewBatch(uuid.New())

	err := batch.Add(context.Background(), q, events.TypeDraftPick, events.DraftPickPayload{})
	if err == nil {
		t.Fatal("expected staging failure to surface")
	}
	if batch.Len() != 0 {
		t.Errorf("failed Add must not leave a pending event, got %d", batch.Len())
	}
}

func TestFlushPublishesInCollectionOrder(t *testing.T) {
	dbtx := &recordingDBTX{}
	q := db.New(dbtx)
	batch := NewBatch(uuid.New())
	ctx := context.Background()

	order := []events.Type{events.TypeDraftPick, events.TypeDraftQueueUpdated, events.TypeDraftNextPick}
	for _, et := range order {
		if err := batch.Add(ctx, q, et, struct{}{}); err != nil {
			t.Fatalf("Add(%s): %v", et, err)
		}
	}

	pub := &recordingPublisher{}
	batch.Flush(ctx, pub)

	if len(pub.published) != len(order) {
		t.Fatalf("published %d events, want %d", len(pub.published), len(order))
	}
	for i, et := range order {
		if pub.published[i] != et {
			t.Errorf("position %d: got %s, want %s", i, pub.published[i], et)
		}
	}
	if batch.Len() != 0 {
		t.Errorf("flush must drain the batch, %d left", batch.Len())
	}
}

func TestFlushSkipsFailedPublishes(t *testing.T) {
	dbtx := &recordingDBTX{}
	q := db.New(dbtx)
	batch := NewBatch(uuid.New())
	ctx := context.Background()

	for _, et := range []events.Type{events.TypeDraftPick, events.TypeDraftNextPick} {
		if err := batch.Add(ctx, q, et, struct{}{}); err != nil {
			t.Fatalf("Add(%s): %v", et, err)
		}
	}

	pub := &recordingPublisher{failOn: events.TypeDraftPick}
	batch.Flush(ctx, pub)

	// The failed event is dropped from the fast path; the one after it
	// still goes out.
	if len(pub.published) != 1 || pub.published[0] != events.TypeDraftNextPick {
		t.Errorf("expected only draft_next_pick to publish, got %v", pub.published)
	}
}
