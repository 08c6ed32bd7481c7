package models

import "github.com/google/uuid"

// DraftQueueEntry is one ordered entry in a roster's autopick preference
// queue for a draft. Exactly one of PlayerID / PickAssetID is set.
type DraftQueueEntry struct {
	ID            uuid.UUID  `json:"id"`
	DraftID       uuid.UUID  `json:"draft_id"`
	RosterID      uuid.UUID  `json:"roster_id"`
	PlayerID      *uuid.UUID `json:"player_id,omitempty"`
	PickAssetID   *uuid.UUID `json:"pick_asset_id,omitempty"`
	QueuePosition int        `json:"queue_position"`
}

// ChessClockEntry tracks a roster's remaining time budget in a chess-clock
// draft. RemainingSeconds never goes negative; zero is a valid balance.
type ChessClockEntry struct {
	DraftID          uuid.UUID `json:"draft_id"`
	RosterID         uuid.UUID `json:"roster_id"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

// OperationRecord is the idempotency record for non-pick commissioner
// actions (start/pause/resume/complete/undo/delete), keyed by
// (IdempotencyKey, UserID, OperationType) and bounded by ExpiresAt.
type OperationRecord struct {
	IdempotencyKey  string `json:"idempotency_key"`
	UserID          uuid.UUID `json:"user_id"`
	OperationType   string `json:"operation_type"`
	DraftID         uuid.UUID `json:"draft_id"`
	Result          []byte `json:"result"`
	CreatedAtUnix   int64  `json:"created_at_unix"`
	ExpiresAtUnix   int64  `json:"expires_at_unix"`
}
