package models

import "github.com/google/uuid"

// PickAsset represents a tradeable future or current-draft pick slot.
// OriginalRosterID is immutable once created; CurrentOwnerRosterID moves
// only through trades or a vet-draft pick-asset selection.
type PickAsset struct {
	ID       uuid.UUID  `json:"id"`
	LeagueID uuid.UUID  `json:"league_id"`
	DraftID  *uuid.UUID `json:"draft_id,omitempty"` // nil for future-season picks not yet attached to a draft

	Season string `json:"season"`
	Round  int    `json:"round"`

	OriginalRosterID     uuid.UUID `json:"original_roster_id"`
	CurrentOwnerRosterID uuid.UUID `json:"current_owner_roster_id"`

	// OriginalPickPosition is nil until confirmOrder finalises the owning
	// draft's order; setOrderFromPickOwnership reads it and does not set it.
	OriginalPickPosition *int `json:"original_pick_position,omitempty"`
}

// VetDraftPickSelection records that a veteran draft's slot was spent to
// pick a rookie pick asset instead of a player.
type VetDraftPickSelection struct {
	DraftID         uuid.UUID `json:"draft_id"`
	DraftPickAssetID uuid.UUID `json:"draft_pick_asset_id"`
	PickNumber      int       `json:"pick_number"`
	RosterID        uuid.UUID `json:"roster_id"`
}
