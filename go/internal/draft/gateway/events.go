package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/events"
)

// DraftEvent is the envelope the gateway fans out to WebSocket clients.
type DraftEvent struct {
	ID        string          `json:"id"`        // Event UUID
	DraftID   string          `json:"draft_id"`  // Draft UUID
	Type      events.Type     `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // Event-specific payload
}

// knownEventTypes is the set of types the gateway forwards; anything else
// from the stream is dropped with a log line instead of an error loop.
var knownEventTypes = map[events.Type]bool{
	events.TypeDraftCreated:         true,
	events.TypeDraftStarted:         true,
	events.TypeDraftPaused:          true,
	events.TypeDraftResumed:         true,
	events.TypeDraftCompleted:       true,
	events.TypeDraftSettingsUpdated: true,
	events.TypeDraftNextPick:        true,
	events.TypeDraftPick:            true,
	events.TypeDraftPickUndone:      true,
	events.TypeDraftQueueUpdated:    true,
	events.TypeAutodraftToggled:     true,
}

// NewDraftEvent wraps a payload in the WebSocket envelope.
func NewDraftEvent(draftID uuid.UUID, eventType events.Type, payload any) (*DraftEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &DraftEvent{
		ID:        uuid.New().String(),
		DraftID:   draftID.String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}

// ParseEventPayload decodes the event's data into its typed payload.
func ParseEventPayload(event *DraftEvent) (any, error) {
	switch event.Type {
	case events.TypeDraftCreated:
		return decodePayload[events.DraftCreatedPayload](event)
	case events.TypeDraftStarted:
		return decodePayload[events.DraftStartedPayload](event)
	case events.TypeDraftPaused:
		return decodePayload[events.DraftPausedPayload](event)
	case events.TypeDraftResumed:
		return decodePayload[events.DraftResumedPayload](event)
	case events.TypeDraftCompleted:
		return decodePayload[events.DraftCompletedPayload](event)
	case events.TypeDraftSettingsUpdated:
		return decodePayload[events.DraftSettingsUpdatedPayload](event)
	case events.TypeDraftNextPick:
		return decodePayload[events.DraftNextPickPayload](event)
	case events.TypeDraftPick:
		return decodePayload[events.DraftPickPayload](event)
	case events.TypeDraftPickUndone:
		return decodePayload[events.DraftPickUndonePayload](event)
	case events.TypeDraftQueueUpdated:
		return decodePayload[events.DraftQueueUpdatedPayload](event)
	case events.TypeAutodraftToggled:
		return decodePayload[events.AutodraftToggledPayload](event)
	default:
		return nil, fmt.Errorf("unknown event type: %s", event.Type)
	}
}

func decodePayload[T any](event *DraftEvent) (T, error) {
	var payload T
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return payload, fmt.Errorf("unmarshal %s payload: %w", event.Type, err)
	}
	return payload, nil
}
