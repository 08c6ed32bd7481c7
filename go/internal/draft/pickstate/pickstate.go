// Package pickstate computes the next pick state a draft transitions to
// after a pick is applied. Compute is total and side-effect free: the same
// inputs always produce the same outputs, modulo the now baseline used to
// derive the pick deadline.
package pickstate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/orderpolicy"
	"github.com/draftforge/dynasty/go/internal/models"
)

// NextState is the result of advancing a draft by one pick.
type NextState struct {
	Completed   bool
	CompletedAt time.Time

	PickNumber int
	Round      int
	RosterID   uuid.UUID
	IsTraded   bool
	Deadline   time.Time
}

// ChessClocks maps a roster to its remaining chess-clock seconds.
type ChessClocks map[uuid.UUID]int

// Compute derives the state the draft should transition to immediately
// after the pick at draft.CurrentPick is applied.
func Compute(
	draft *models.Draft,
	order []models.DraftOrderEntry,
	assets []models.PickAsset,
	clocks ChessClocks,
	now time.Time,
) (NextState, error) {
	if len(order) == 0 {
		return NextState{}, fmt.Errorf("pickstate: empty draft order")
	}
	n := len(order)
	totalPicks := n * draft.Rounds
	nextPickNumber := draft.CurrentPick + 1

	if nextPickNumber > totalPicks {
		return NextState{Completed: true, CompletedAt: now}, nil
	}

	round, _ := orderpolicy.RoundAndSlot(n, nextPickNumber)
	picker, isTraded, err := orderpolicy.ActualPicker(order, draft.DraftType, nextPickNumber, assets)
	if err != nil {
		return NextState{}, err
	}

	deadline := deadlineFor(draft, picker, clocks, now)

	return NextState{
		PickNumber: nextPickNumber,
		Round:      round,
		RosterID:   picker,
		IsTraded:   isTraded,
		Deadline:   deadline,
	}, nil
}

func deadlineFor(draft *models.Draft, picker uuid.UUID, clocks ChessClocks, now time.Time) time.Time {
	settings := draft.Settings.WithDefaults()
	if settings.TimerMode != models.TimerModeChessClock {
		return now.Add(time.Duration(draft.PickTimeSeconds) * time.Second)
	}
	if remaining, ok := clocks[picker]; ok && remaining > 0 {
		return now.Add(time.Duration(remaining) * time.Second)
	}
	return now.Add(time.Duration(settings.ChessClockMinPickSeconds) * time.Second)
}
