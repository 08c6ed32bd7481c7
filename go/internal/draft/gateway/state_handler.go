package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StateProvider reads authoritative draft state from storage for clients
// the in-memory tracker can't serve (gateway restart, cold draft).
type StateProvider interface {
	GetDraftState(ctx context.Context, draftID uuid.UUID) (*DraftStateResponse, error)
	GetActiveDrafts(ctx context.Context) ([]DraftSummary, error)
}

// DraftStateResponse is the reconnect payload: full standing state plus
// the recent pick tail.
type DraftStateResponse struct {
	DraftID        string                 `json:"draft_id"`
	Status         string                 `json:"status"`
	CurrentPick    *CurrentPickInfo       `json:"current_pick,omitempty"`
	RecentPicks    []RecentPickInfo       `json:"recent_picks"`
	TimeRemaining  *int                   `json:"time_remaining_sec,omitempty"`
	TotalPicks     int                    `json:"total_picks"`
	CompletedPicks int                    `json:"completed_picks"`
	Metadata       map[string]interface{} `json:"metadata"`
}

// CurrentPickInfo is the pick on the clock as storage sees it.
type CurrentPickInfo struct {
	TeamID      string    `json:"team_id"`
	Round       int       `json:"round"`
	OverallPick int       `json:"overall_pick"`
	StartedAt   time.Time `json:"started_at"`
	TimeoutAt   time.Time `json:"timeout_at"`
	TimePerPick int       `json:"time_per_pick_sec"`
}

// RecentPickInfo is one completed pick in the reconnect tail.
type RecentPickInfo struct {
	PickID      string    `json:"pick_id"`
	TeamID      string    `json:"team_id"`
	PlayerID    string    `json:"player_id,omitempty"`
	Round       int       `json:"round"`
	Pick        int       `json:"pick"`
	OverallPick int       `json:"overall_pick"`
	MadeAt      time.Time `json:"made_at"`
}

// DraftSummary is one row of the active-drafts listing.
type DraftSummary struct {
	DraftID   string     `json:"draft_id"`
	LeagueID  string     `json:"league_id"`
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// StateHandler serves the reconnect state API. Live in-memory state
// overlays the storage read so the countdown reflects what the event
// stream last said.
type StateHandler struct {
	provider StateProvider
	states   *DraftStateManager
}

func NewStateHandler(provider StateProvider, states *DraftStateManager) *StateHandler {
	return &StateHandler{provider: provider, states: states}
}

// HandleGetDraftState serves GET /api/drafts/{id}/state.
func (h *StateHandler) HandleGetDraftState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftIDStr := draftIDFromStatePath(r.URL.Path)
	if draftIDStr == "" {
		http.Error(w, "Draft ID is required", http.StatusBadRequest)
		return
	}
	draftID, err := uuid.Parse(draftIDStr)
	if err != nil {
		http.Error(w, "Invalid draft ID format", http.StatusBadRequest)
		return
	}

	state, err := h.provider.GetDraftState(r.Context(), draftID)
	if err != nil {
		log.Error().Err(err).Str("draft_id", draftID.String()).Msg("failed to read draft state")
		http.Error(w, "Failed to get draft state", http.StatusInternalServerError)
		return
	}

	// Overlay the live countdown when the tracker has fresher knowledge.
	if live := h.states.GetState(draftID); live != nil && live.CurrentPick != nil {
		remaining := live.CurrentPick.CalculateTimeRemaining()
		state.TimeRemaining = &remaining
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		log.Error().Err(err).Msg("failed to encode draft state response")
	}
}

// HandleGetActiveDrafts serves GET /api/drafts/active.
func (h *StateHandler) HandleGetActiveDrafts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	drafts, err := h.provider.GetActiveDrafts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list active drafts")
		http.Error(w, "Failed to get active drafts", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(drafts); err != nil {
		log.Error().Err(err).Msg("failed to encode active drafts response")
	}
}

// RegisterStateRoutes mounts the state endpoints.
func (h *StateHandler) RegisterStateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/drafts/active", h.HandleGetActiveDrafts)
	mux.HandleFunc("/api/drafts/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/state") {
			h.HandleGetDraftState(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// draftIDFromStatePath extracts the ID from /api/drafts/{id}/state.
func draftIDFromStatePath(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/drafts/")
	trimmed = strings.TrimSuffix(trimmed, "/state")
	if trimmed == path || strings.Contains(trimmed, "/") {
		return ""
	}
	return trimmed
}
