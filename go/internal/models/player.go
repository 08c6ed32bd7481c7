package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a sports player in the system
type Player struct {
	ID         uuid.UUID  `json:"id"`
	SportID    string     `json:"sport_id"`
	ExternalID string     `json:"external_id"`
	FullName   string     `json:"full_name"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	// ADP is average draft position: lower is better, nil sorts last.
	// Populated by the stats-ingestion collaborator (out of scope here).
	ADP *float64 `json:"adp,omitempty"`

	// IsCollegePlayer marks a player as belonging to the college pool
	// rather than an NFL roster; used by draft pool-eligibility checks.
	IsCollegePlayer bool `json:"is_college_player,omitempty"`

	NFLPlayerProfile *NFLPlayerProfile `json:"nfl_player_profile,omitempty"`
}

// NFLPlayerProfile represents NFL-specific player attributes
type NFLPlayerProfile struct {
	PlayerID     uuid.UUID  `json:"player_id"`
	Position     string     `json:"position"`
	Status       string     `json:"status"`
	College      string     `json:"college"`
	JerseyNumber int        `json:"jersey_number"`
	Experience   int        `json:"experience"`
	BirthDate    *time.Time `json:"birth_date,omitempty"` // Keep as pointer for null dates
	HeightCm     int        `json:"height_cm"`
	WeightKg     int        `json:"weight_kg"`
	HeightDesc   string     `json:"height_desc"`
	WeightDesc   string     `json:"weight_desc"`
}
