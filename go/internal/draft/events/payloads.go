// Package events defines the wire payloads the draft engine fans out to
// subscribers. Payloads are snake_case JSON at the boundary and are shared
// between the engine, the outbox relay, and the gateway to avoid cyclic
// imports.
package events

import (
	"time"
)

// Type names the event kinds the engine emits. The string values are the
// wire-level event_type and double as the NATS subject suffix.
type Type string

const (
	TypeDraftCreated         Type = "draft_created"
	TypeDraftStarted         Type = "draft_started"
	TypeDraftPaused          Type = "draft_paused"
	TypeDraftResumed         Type = "draft_resumed"
	TypeDraftCompleted       Type = "draft_completed"
	TypeDraftSettingsUpdated Type = "draft_settings_updated"
	TypeDraftNextPick        Type = "draft_next_pick"
	TypeDraftPick            Type = "draft_pick"
	TypeDraftPickUndone      Type = "draft_pick_undone"
	TypeDraftQueueUpdated    Type = "draft_queue_updated"
	TypeAutodraftToggled     Type = "draft_autodraft_toggled"
)

// DraftCreatedPayload announces a newly created draft.
type DraftCreatedPayload struct {
	DraftID   string    `json:"draft_id"`
	LeagueID  string    `json:"league_id"`
	DraftType string    `json:"draft_type"`
	CreatedAt time.Time `json:"created_at"`
}

// DraftStartedPayload announces the transition to in_progress.
type DraftStartedPayload struct {
	DraftID     string    `json:"draft_id"`
	DraftType   string    `json:"draft_type"`
	StartedAt   time.Time `json:"started_at"`
	TotalRounds int       `json:"total_rounds"`
	TotalPicks  int       `json:"total_picks"`
}

// DraftPausedPayload announces a commissioner pause.
type DraftPausedPayload struct {
	DraftID          string    `json:"draft_id"`
	PausedAt         time.Time `json:"paused_at"`
	PausedBy         string    `json:"paused_by,omitempty"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

// DraftResumedPayload announces a resume with the rebuilt deadline.
type DraftResumedPayload struct {
	DraftID      string     `json:"draft_id"`
	ResumedAt    time.Time  `json:"resumed_at"`
	PickDeadline *time.Time `json:"pick_deadline,omitempty"`
}

// DraftCompletedPayload announces the terminal state.
type DraftCompletedPayload struct {
	DraftID     string    `json:"draft_id"`
	CompletedAt time.Time `json:"completed_at"`
	Duration    string    `json:"duration,omitempty"`
	TotalPicks  int       `json:"total_picks"`
}

// DraftSettingsUpdatedPayload carries the new settings blob verbatim.
type DraftSettingsUpdatedPayload struct {
	DraftID   string         `json:"draft_id"`
	Settings  map[string]any `json:"settings"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ChessClockBalance is one roster's remaining budget, included on
// draft_next_pick for chess-clock drafts.
type ChessClockBalance struct {
	RosterID         string `json:"roster_id"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// DraftNextPickPayload announces whose turn it is now. OriginalRosterID is
// the slot's pre-trade owner; IsTraded marks a rewritten slot.
type DraftNextPickPayload struct {
	DraftID          string              `json:"draft_id"`
	CurrentPick      int                 `json:"current_pick"`
	CurrentRound     int                 `json:"current_round"`
	CurrentRosterID  string              `json:"current_roster_id"`
	OriginalRosterID string              `json:"original_roster_id"`
	IsTraded         bool                `json:"is_traded"`
	PickDeadline     *time.Time          `json:"pick_deadline,omitempty"`
	ChessClocks      []ChessClockBalance `json:"chess_clocks,omitempty"`
}

// DraftPickPayload is the enriched pick announcement. For pick-asset
// selections PlayerID is empty and PickAssetID carries the asset.
type DraftPickPayload struct {
	DraftID        string    `json:"draft_id"`
	PickID         string    `json:"pick_id"`
	PickNumber     int       `json:"pick_number"`
	Round          int       `json:"round"`
	PickInRound    int       `json:"pick_in_round"`
	RosterID       string    `json:"roster_id"`
	PlayerID       string    `json:"player_id,omitempty"`
	PlayerName     string    `json:"player_name,omitempty"`
	PlayerPosition string    `json:"player_position,omitempty"`
	PlayerTeam     string    `json:"player_team,omitempty"`
	PickAssetID    string    `json:"pick_asset_id,omitempty"`
	Week           int       `json:"week,omitempty"`
	OpponentID     string    `json:"opponent_roster_id,omitempty"`
	IsAutoPick     bool      `json:"is_auto_pick"`
	PickedAt       time.Time `json:"picked_at"`
}

// DraftPickUndonePayload announces removal of the latest pick and the state
// the draft reverted to.
type DraftPickUndonePayload struct {
	DraftID         string     `json:"draft_id"`
	PickNumber      int        `json:"pick_number"`
	RosterID        string     `json:"roster_id"`
	PlayerID        string     `json:"player_id,omitempty"`
	PickAssetID     string     `json:"pick_asset_id,omitempty"`
	CurrentPick     int        `json:"current_pick"`
	CurrentRound    int        `json:"current_round"`
	CurrentRosterID string     `json:"current_roster_id"`
	PickDeadline    *time.Time `json:"pick_deadline,omitempty"`
	UndoneAt        time.Time  `json:"undone_at"`
}

// QueueAction is the kind of queue mutation a draft_queue_updated event
// describes.
type QueueAction string

const (
	QueueActionAdded     QueueAction = "added"
	QueueActionRemoved   QueueAction = "removed"
	QueueActionReordered QueueAction = "reordered"
)

// DraftQueueUpdatedPayload describes one roster's queue mutation. Exactly
// one of PlayerID / PickAssetID is set for added/removed.
type DraftQueueUpdatedPayload struct {
	DraftID     string      `json:"draft_id"`
	RosterID    string      `json:"roster_id"`
	Action      QueueAction `json:"action"`
	PlayerID    string      `json:"player_id,omitempty"`
	PickAssetID string      `json:"pick_asset_id,omitempty"`
}

// AutodraftToggledPayload announces an autodraft flag change. Forced marks
// the engine-initiated toggle after a timeout autopick.
type AutodraftToggledPayload struct {
	DraftID  string `json:"draft_id"`
	RosterID string `json:"roster_id"`
	Enabled  bool   `json:"enabled"`
	Forced   bool   `json:"forced"`
}
