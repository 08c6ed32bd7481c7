package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DraftType defines the ordering rules a draft follows.
type DraftType string

const (
	DraftTypeSnake    DraftType = "SNAKE"
	DraftTypeLinear   DraftType = "LINEAR"
	DraftTypeMatchups DraftType = "MATCHUPS"
	DraftTypeAuction  DraftType = "AUCTION" // delegated to the auction subsystem; data container only
)

// DraftStatus defines the lifecycle status of a draft.
type DraftStatus string

const (
	DraftStatusNotStarted DraftStatus = "NOT_STARTED"
	DraftStatusInProgress DraftStatus = "IN_PROGRESS"
	DraftStatusPaused     DraftStatus = "PAUSED"
	DraftStatusCompleted  DraftStatus = "COMPLETED"
)

// TimerMode selects between a fixed per-pick clock and a chess-clock budget.
type TimerMode string

const (
	TimerModePerPick    TimerMode = "PER_PICK"
	TimerModeChessClock TimerMode = "CHESS_CLOCK"
)

// PlayerPool enumerates the pools a draft may select from.
type PlayerPool string

const (
	PlayerPoolVeteran PlayerPool = "VETERAN"
	PlayerPoolRookie  PlayerPool = "ROOKIE"
	PlayerPoolCollege PlayerPool = "COLLEGE"
)

// DraftSettings is the discriminated configuration for a draft. It replaces
// the source's free-form settings blob with an enumerated struct.
// WithDefaults fills zero-valued fields; timer mode and player pool values
// outside the enumerations are not rejected.
type DraftSettings struct {
	Rounds             int          `json:"rounds"`
	PickTimeSeconds    int          `json:"time_per_pick_sec"`
	ThirdRoundReversal bool         `json:"third_round_reversal,omitempty"`
	PlayerPool         []PlayerPool `json:"player_pool,omitempty"`

	IncludeRookiePicks bool   `json:"include_rookie_picks,omitempty"`
	RookiePicksSeason  string `json:"rookie_picks_season,omitempty"`
	RookiePicksRounds  int    `json:"rookie_picks_rounds,omitempty"`

	TimerMode                TimerMode `json:"timer_mode,omitempty"`
	ChessClockTotalSeconds   int       `json:"chess_clock_total_seconds,omitempty"`
	ChessClockMinPickSeconds int       `json:"chess_clock_min_pick_seconds,omitempty"`

	// TimeZone is the IANA zone name the overnight-pause window is
	// interpreted in. Defaults to UTC when empty.
	TimeZone string `json:"time_zone,omitempty"`

	// Auction settings are carried but not interpreted by this engine.
	BudgetPerTeam        *float64 `json:"budget_per_team,omitempty"`
	MinBidIncrement      *float64 `json:"min_bid_increment,omitempty"`
	TimePerNominationSec *int     `json:"time_per_nomination_sec,omitempty"`
}

// WithDefaults fills in the documented defaults for zero-valued fields.
func (s DraftSettings) WithDefaults() DraftSettings {
	if len(s.PlayerPool) == 0 {
		s.PlayerPool = []PlayerPool{PlayerPoolVeteran, PlayerPoolRookie}
	}
	if s.RookiePicksRounds == 0 {
		s.RookiePicksRounds = 5
	}
	if s.TimerMode == "" {
		s.TimerMode = TimerModePerPick
	}
	if s.ChessClockMinPickSeconds == 0 {
		s.ChessClockMinPickSeconds = 10
	}
	if s.TimeZone == "" {
		s.TimeZone = "UTC"
	}
	return s
}

// PoolIncludes reports whether the settings permit drafting from the pool.
func (s DraftSettings) PoolIncludes(pool PlayerPool) bool {
	for _, p := range s.PlayerPool {
		if p == pool {
			return true
		}
	}
	return false
}

// DraftState holds the transient fields the source stored in a free-form map:
// pause bookkeeping that doesn't belong in the steady-state columns above.
type DraftState struct {
	PausedAt         *time.Time      `json:"paused_at,omitempty"`
	PausedBy         *uuid.UUID      `json:"paused_by,omitempty"`
	RemainingSeconds *int            `json:"remaining_seconds,omitempty"`
	PausedLotState   json.RawMessage `json:"paused_lot_state,omitempty"`
	TurnStartedAt    *time.Time      `json:"turn_started_at,omitempty"`
}

// Draft represents a draft instance.
type Draft struct {
	ID       uuid.UUID `json:"id"`
	LeagueID uuid.UUID `json:"league_id"`

	DraftType DraftType   `json:"draft_type"`
	Status    DraftStatus `json:"status"`

	Rounds          int `json:"rounds"`
	CurrentPick     int `json:"current_pick"`
	CurrentRound    int `json:"current_round"`
	PickTimeSeconds int `json:"time_per_pick_sec"`

	CurrentRosterID *uuid.UUID `json:"current_roster_id,omitempty"`
	PickDeadline    *time.Time `json:"pick_deadline,omitempty"`

	OrderConfirmed bool `json:"order_confirmed"`

	OvernightPauseEnabled bool   `json:"overnight_pause_enabled"`
	OvernightPauseStart   string `json:"overnight_pause_start,omitempty"` // "HH:MM"
	OvernightPauseEnd     string `json:"overnight_pause_end,omitempty"`   // "HH:MM"

	Settings   DraftSettings `json:"settings"`
	DraftState DraftState    `json:"draft_state"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalPicks returns the number of pick slots for the given roster count;
// the count itself is not stored on the draft row, it's derived from the
// draft_order table.
func (d *Draft) TotalPicks(totalRosters int) int {
	return totalRosters * d.Rounds
}
