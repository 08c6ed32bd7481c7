package models

import "github.com/google/uuid"

// DraftOrderEntry is one roster's slot in a draft's pick order.
// Positions of a draft form exactly the set {1, 2, ..., N} where N is the
// number of rosters; the set is checked by the service's order validation
// before the store writes it, not by this type or the store.
type DraftOrderEntry struct {
	DraftID             uuid.UUID `json:"draft_id"`
	RosterID            uuid.UUID `json:"roster_id"`
	DraftPosition       int       `json:"draft_position"`
	IsAutodraftEnabled  bool      `json:"is_autodraft_enabled"`
}
