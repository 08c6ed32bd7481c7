// Package validate holds the pure pre-condition checks a pick must pass
// before the engine is allowed to insert it. Checks run in a fixed order;
// DraftNotInProgress is terminal and suppresses every later check.
package validate

import (
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

type Violation string

const (
	DraftNotInProgress Violation = "DRAFT_NOT_IN_PROGRESS"
	DraftNotStartedYet Violation = "DRAFT_NOT_STARTED_YET"
	OrderNotConfirmed  Violation = "ORDER_NOT_CONFIRMED"
	NotYourTurn        Violation = "NOT_YOUR_TURN"
	PickDeadlinePassed Violation = "PICK_DEADLINE_PASSED"
)

// Snapshot is the read-under-lock state a pick is validated against.
type Snapshot struct {
	Status                models.DraftStatus
	DraftType             models.DraftType
	ScheduledAt           *time.Time
	OrderConfirmed        bool
	CurrentPick           int
	PickDeadline          *time.Time
	CurrentPickerRosterID uuid.UUID
}

// Pick returns the ordered violations for a pick attempt by rosterID at
// now. isAutoPick suppresses the turn and deadline checks, since autopicks
// are issued by the engine on the current picker's behalf, usually because
// the deadline already expired.
func Pick(snap Snapshot, rosterID uuid.UUID, now time.Time, isAutoPick bool) []Violation {
	if snap.Status != models.DraftStatusInProgress {
		return []Violation{DraftNotInProgress}
	}

	var violations []Violation

	if snap.ScheduledAt != nil && now.Before(*snap.ScheduledAt) {
		violations = append(violations, DraftNotStartedYet)
	}
	if snap.DraftType != models.DraftTypeAuction && !snap.OrderConfirmed {
		violations = append(violations, OrderNotConfirmed)
	}
	if !isAutoPick && rosterID != snap.CurrentPickerRosterID {
		violations = append(violations, NotYourTurn)
	}
	if !isAutoPick && snap.PickDeadline != nil && now.After(*snap.PickDeadline) {
		violations = append(violations, PickDeadlinePassed)
	}
	return violations
}
