package eventbus

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogPublisher is the fast-path stand-in for deployments without a broker:
// events are logged and delivery is left entirely to the outbox relay.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, event Event) error {
	log.Debug().
		Str("draft_id", event.DraftID.String()).
		Str("event_type", string(event.Type)).
		Msg("event staged for outbox delivery only")
	return nil
}
