package gateway

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/events"
)

// DraftState is the gateway's in-memory view of one draft, kept current
// from the event stream and served to late-joining clients.
type DraftState struct {
	DraftID        string     `json:"draft_id"`
	Status         string     `json:"status"`
	CurrentPick    *PickState `json:"current_pick,omitempty"`
	TotalPicks     int        `json:"total_picks"`
	CompletedPicks int        `json:"completed_picks"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	PausedAt       *time.Time `json:"paused_at,omitempty"`
}

// PickState is the pick currently on the clock.
type PickState struct {
	RosterID         string     `json:"roster_id"`
	OriginalRosterID string     `json:"original_roster_id,omitempty"`
	IsTraded         bool       `json:"is_traded"`
	Round            int        `json:"round"`
	PickNumber       int        `json:"pick_number"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	TimeRemainingSec int        `json:"time_remaining_sec"`
}

// CalculateTimeRemaining derives the countdown from the deadline. The
// client renders this; the server's timeout stays authoritative.
func (p *PickState) CalculateTimeRemaining() int {
	if p.Deadline == nil {
		return 0
	}
	remaining := int(time.Until(*p.Deadline).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UpdateTimeRemaining refreshes the countdown field.
func (p *PickState) UpdateTimeRemaining() {
	p.TimeRemainingSec = p.CalculateTimeRemaining()
}

// DraftStateManager tracks live draft state in memory.
type DraftStateManager struct {
	mu     sync.RWMutex
	states map[uuid.UUID]*DraftState
}

func NewDraftStateManager() *DraftStateManager {
	return &DraftStateManager{
		states: make(map[uuid.UUID]*DraftState),
	}
}

func (dsm *DraftStateManager) GetState(draftID uuid.UUID) *DraftState {
	dsm.mu.RLock()
	defer dsm.mu.RUnlock()
	return dsm.states[draftID]
}

func (dsm *DraftStateManager) UpdateState(draftID uuid.UUID, state *DraftState) {
	dsm.mu.Lock()
	defer dsm.mu.Unlock()
	dsm.states[draftID] = state
}

func (dsm *DraftStateManager) RemoveState(draftID uuid.UUID) {
	dsm.mu.Lock()
	defer dsm.mu.Unlock()
	delete(dsm.states, draftID)
}

// ProcessEvent folds one stream event into the tracked state.
func (dsm *DraftStateManager) ProcessEvent(event *DraftEvent) error {
	draftID, err := uuid.Parse(event.DraftID)
	if err != nil {
		return err
	}

	state := dsm.GetState(draftID)
	if state == nil {
		state = &DraftState{DraftID: event.DraftID}
	}

	payload, err := ParseEventPayload(event)
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case events.DraftStartedPayload:
		state.Status = "IN_PROGRESS"
		state.TotalPicks = p.TotalPicks
		startedAt := p.StartedAt
		state.StartedAt = &startedAt

	case events.DraftNextPickPayload:
		state.Status = "IN_PROGRESS"
		state.CurrentPick = &PickState{
			RosterID:         p.CurrentRosterID,
			OriginalRosterID: p.OriginalRosterID,
			IsTraded:         p.IsTraded,
			Round:            p.CurrentRound,
			PickNumber:       p.CurrentPick,
			Deadline:         p.PickDeadline,
		}
		state.CurrentPick.UpdateTimeRemaining()

	case events.DraftPickPayload:
		if p.PickNumber > 0 {
			state.CompletedPicks++
		}
		state.CurrentPick = nil

	case events.DraftPickUndonePayload:
		if state.CompletedPicks > 0 {
			state.CompletedPicks--
		}
		state.Status = "IN_PROGRESS"
		state.CompletedAt = nil
		state.CurrentPick = &PickState{
			RosterID:   p.CurrentRosterID,
			Round:      p.CurrentRound,
			PickNumber: p.CurrentPick,
			Deadline:   p.PickDeadline,
		}
		state.CurrentPick.UpdateTimeRemaining()

	case events.DraftPausedPayload:
		state.Status = "PAUSED"
		pausedAt := p.PausedAt
		state.PausedAt = &pausedAt
		if state.CurrentPick != nil {
			state.CurrentPick.Deadline = nil
			state.CurrentPick.TimeRemainingSec = p.RemainingSeconds
		}

	case events.DraftResumedPayload:
		state.Status = "IN_PROGRESS"
		state.PausedAt = nil
		if state.CurrentPick != nil {
			state.CurrentPick.Deadline = p.PickDeadline
			state.CurrentPick.UpdateTimeRemaining()
		}

	case events.DraftCompletedPayload:
		state.Status = "COMPLETED"
		completedAt := p.CompletedAt
		state.CompletedAt = &completedAt
		state.CurrentPick = nil

	default:
		// queue updates, autodraft toggles, settings changes and creation
		// events carry no state the gateway tracks
	}

	dsm.UpdateState(draftID, state)
	return nil
}
