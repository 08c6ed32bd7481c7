package models

import (
	"time"

	"github.com/google/uuid"
)

// FantasyTeam is a league member's team. Draft order entries, picks, and
// pick assets all reference fantasy teams by ID; in draft terms a fantasy
// team and a roster are the same thing.
type FantasyTeam struct {
	ID        uuid.UUID `json:"id"`
	LeagueID  uuid.UUID `json:"league_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}
