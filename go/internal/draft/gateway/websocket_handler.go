package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades draft-watch requests and hands the socket to
// the hub with a resync snapshot.
type WebSocketHandler struct {
	hub    *Hub
	states *DraftStateManager
}

func NewWebSocketHandler(hub *Hub, states *DraftStateManager) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, states: states}
}

// HandleDraftConnection serves GET /ws/draft?draft_id=...&roster_id=...
// roster_id is optional: spectators watch without one; authenticated
// identity comes from the session layer in front of this handler.
func (h *WebSocketHandler) HandleDraftConnection(w http.ResponseWriter, r *http.Request) {
	draftIDStr := r.URL.Query().Get("draft_id")
	if draftIDStr == "" {
		http.Error(w, "draft_id is required", http.StatusBadRequest)
		return
	}
	draftID, err := uuid.Parse(draftIDStr)
	if err != nil {
		http.Error(w, "invalid draft_id format", http.StatusBadRequest)
		return
	}
	rosterID := r.URL.Query().Get("roster_id")

	var snapshot *DraftEvent
	if state := h.states.GetState(draftID); state != nil {
		snapshot, err = snapshotEvent(draftID, state)
		if err != nil {
			log.Error().Err(err).Str("draft_id", draftID.String()).Msg("failed to build resync snapshot")
			snapshot = nil
		}
	}

	if err := h.hub.Attach(w, r, rosterID, draftID, snapshot); err != nil {
		log.Error().
			Err(err).
			Str("draft_id", draftID.String()).
			Str("roster_id", rosterID).
			Msg("failed to attach websocket client")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
	}
}

// HandleConnectionStats serves GET /ws/stats.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.hub.Stats()); err != nil {
		log.Error().Err(err).Msg("failed to encode connection stats")
	}
}

// RegisterRoutes mounts the websocket endpoints.
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/draft", h.HandleDraftConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
