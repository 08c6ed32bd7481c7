package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service assembles the gateway: the hub, the stream consumer, the live
// state tracker, and the reconnect state API. Every stream event first
// updates the tracked state, then fans out, so a client that reconnects
// mid-pick resyncs to exactly what everyone else has seen.
type Service struct {
	hub          *Hub
	wsHandler    *WebSocketHandler
	consumer     *EventConsumer
	stateHandler *StateHandler
	states       *DraftStateManager
}

// Config holds configuration for the draft gateway service.
type Config struct {
	Hub       HubConfig
	JetStream JetStreamConsumerConfig
}

func DefaultConfig() Config {
	return Config{
		Hub:       DefaultHubConfig(),
		JetStream: DefaultJetStreamConsumerConfig(),
	}
}

func NewService(config Config, provider StateProvider) (*Service, error) {
	hub := NewHub(config.Hub)
	states := NewDraftStateManager()

	s := &Service{
		hub:          hub,
		wsHandler:    NewWebSocketHandler(hub, states),
		stateHandler: NewStateHandler(provider, states),
		states:       states,
	}

	consumer, err := NewEventConsumer(s, config.JetStream)
	if err != nil {
		return nil, fmt.Errorf("create event consumer: %w", err)
	}
	s.consumer = consumer
	return s, nil
}

// HandleStreamEvent is the consumer's sink: fold the event into tracked
// state, then broadcast. A state-tracking failure is logged, not fatal --
// the broadcast still goes out and the next snapshot self-corrects.
func (s *Service) HandleStreamEvent(draftID uuid.UUID, event *DraftEvent) {
	if err := s.states.ProcessEvent(event); err != nil {
		log.Error().
			Err(err).
			Str("draft_id", draftID.String()).
			Str("event_type", string(event.Type)).
			Msg("failed to track event in draft state")
	}
	s.hub.BroadcastToDraft(draftID, event)
}

// Start runs the hub and the consumer until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting draft gateway service")

	go s.hub.Run(ctx)
	go func() {
		if err := s.consumer.Start(ctx); err != nil {
			log.Error().Err(err).Msg("event consumer failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("draft gateway service shutting down")
	return s.Stop()
}

func (s *Service) Stop() error {
	if err := s.consumer.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop event consumer")
	}
	log.Info().Msg("draft gateway service stopped")
	return nil
}

// RegisterRoutes mounts the websocket and state endpoints.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	s.stateHandler.RegisterStateRoutes(mux)
}

// GetStats reports hub occupancy for the info endpoint.
func (s *Service) GetStats() map[string]interface{} {
	stats := s.hub.Stats()
	stats["service"] = "draft_gateway"
	return stats
}
