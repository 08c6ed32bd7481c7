// Package eventbus is the publish-after-commit facade between the draft
// engine and its subscribers. Mutating operations collect event payloads
// into a Batch while their transaction is open; the batch stages each event
// into the outbox table on the same transaction and, once the transaction
// has committed, publishes the collected events in order. Immediate
// publication is best effort: a failure is logged and left to the outbox
// relay, never surfaced to the pick caller.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/rs/zerolog/log"
)

// Event is one staged payload awaiting post-commit publication.
type Event struct {
	ID      uuid.UUID
	DraftID uuid.UUID
	Type    events.Type
	Payload json.RawMessage
}

// Batch accumulates events for a single transaction. It is not safe for
// concurrent use; each transaction owns exactly one batch.
type Batch struct {
	draftID uuid.UUID
	pending []Event
}

// NewBatch starts an empty batch for one draft's transaction.
func NewBatch(draftID uuid.UUID) *Batch {
	return &Batch{draftID: draftID}
}

// Add marshals payload and stages it in collection order. Staging writes
// the outbox row through q, which must be bound to the open transaction so
// the event rolls back with the state change it describes.
func (b *Batch) Add(ctx context.Context, q *db.Queries, eventType events.Type, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	ev := Event{
		ID:      uuid.New(),
		DraftID: b.draftID,
		Type:    eventType,
		Payload: raw,
	}
	if err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:        ev.ID,
		DraftID:   ev.DraftID,
		EventType: string(ev.Type),
		Payload:   ev.Payload,
	}); err != nil {
		return fmt.Errorf("stage %s outbox row: %w", eventType, err)
	}
	b.pending = append(b.pending, ev)
	return nil
}

// Events returns the staged events in collection order.
func (b *Batch) Events() []Event {
	return b.pending
}

// Len reports how many events are staged.
func (b *Batch) Len() int { return len(b.pending) }

// Publisher delivers one event to the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Flush publishes the batch in collection order after the owning
// transaction has committed. Failures are logged and skipped: the outbox
// relay redelivers anything the fast path drops, so subscribers must
// suppress duplicates by (draft_id, pick_number).
func (b *Batch) Flush(ctx context.Context, pub Publisher) {
	for _, ev := range b.pending {
		if err := pub.Publish(ctx, ev); err != nil {
			log.Warn().
				Err(err).
				Str("draft_id", ev.DraftID.String()).
				Str("event_type", string(ev.Type)).
				Msg("post-commit publish failed; outbox relay will redeliver")
		}
	}
	b.pending = nil
}
