package models

import (
	"time"

	"github.com/google/uuid"
)

// PickMetadata carries the extra fields a non-player pick needs: the
// week/opponent pair for a matchups pick, or the asset and its pre-selection
// owner for a vet-draft pick-asset selection. Exactly one of {PlayerID,
// week+opponent metadata, asset metadata} is set per logical pick.
type PickMetadata struct {
	Week             int        `json:"week,omitempty"`
	OpponentRosterID *uuid.UUID `json:"opponent_roster_id,omitempty"`

	// PickAssetID links an asset-selection pick to its asset;
	// PrevOwnerRosterID is the owner before the selection transferred the
	// asset, kept so undo can restore it.
	PickAssetID       *uuid.UUID `json:"pick_asset_id,omitempty"`
	PrevOwnerRosterID *uuid.UUID `json:"prev_owner_roster_id,omitempty"`
}

// DraftPick represents a single pick in a draft.
//
// PickNumber is positive for forward picks and negative for the reciprocal
// half of a matchups pick (the opponent's side of the same slot); reciprocal
// rows do not advance CurrentPick and are excluded from turn/round
// progression queries.
type DraftPick struct {
	ID      uuid.UUID `json:"id"`
	DraftID uuid.UUID `json:"draft_id"`

	PickNumber  int `json:"pick_number"`
	Round       int `json:"round"`
	PickInRound int `json:"pick_in_round"`

	RosterID uuid.UUID  `json:"roster_id"`
	PlayerID *uuid.UUID `json:"player_id,omitempty"`

	PickMetadata *PickMetadata `json:"pick_metadata,omitempty"`

	IsAutoPick     bool      `json:"is_auto_pick"`
	PickedAt       time.Time `json:"picked_at"`
	IdempotencyKey *string   `json:"idempotency_key,omitempty"`
}
