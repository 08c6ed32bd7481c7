// Package orderpolicy computes whose turn a pick number belongs to. The
// functions here are pure: given a draft type, a sorted draft order, and a
// pick number, they return a roster ID with no I/O and no side effects.
package orderpolicy

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

// RoundAndSlot returns the 1-based round and within-round slot for pick
// number p over a draft with n rosters.
func RoundAndSlot(n, p int) (round, slot int) {
	round = (p-1)/n + 1
	slot = (p-1)%n + 1
	return round, slot
}

// checkSorted enforces the defensive sortedness contract: positions must be
// strictly increasing and form exactly {1..N}.
func checkSorted(order []models.DraftOrderEntry) error {
	for i, entry := range order {
		want := i + 1
		if entry.DraftPosition != want {
			return fmt.Errorf("orderpolicy: draft order is not sorted/contiguous: position %d at index %d, want %d",
				entry.DraftPosition, i, want)
		}
	}
	return nil
}

// OriginalPicker returns the roster occupying pick number p under the
// draft's ordering rule, ignoring traded picks. order must be sorted by
// DraftPosition ascending and contiguous from 1..N.
func OriginalPicker(order []models.DraftOrderEntry, draftType models.DraftType, p int) (uuid.UUID, error) {
	if len(order) == 0 {
		return uuid.Nil, fmt.Errorf("orderpolicy: empty draft order")
	}
	if err := checkSorted(order); err != nil {
		return uuid.Nil, err
	}
	n := len(order)
	round, slot := RoundAndSlot(n, p)

	pos := slot
	switch draftType {
	case models.DraftTypeLinear:
		pos = slot
	case models.DraftTypeSnake, models.DraftTypeMatchups:
		if round%2 == 0 {
			pos = n - slot + 1
		}
	default:
		return uuid.Nil, fmt.Errorf("orderpolicy: unsupported draft type %q", draftType)
	}
	return order[pos-1].RosterID, nil
}

// ActualPicker rewrites OriginalPicker's result for traded picks: it looks
// up the pick-asset row for (round, originalRosterId) and, if present,
// returns its current owner instead. isTraded reports whether a rewrite
// happened.
func ActualPicker(
	order []models.DraftOrderEntry,
	draftType models.DraftType,
	p int,
	assets []models.PickAsset,
) (rosterID uuid.UUID, isTraded bool, err error) {
	original, err := OriginalPicker(order, draftType, p)
	if err != nil {
		return uuid.Nil, false, err
	}
	n := len(order)
	round, _ := RoundAndSlot(n, p)

	for _, a := range assets {
		if a.Round == round && a.OriginalRosterID == original {
			return a.CurrentOwnerRosterID, a.CurrentOwnerRosterID != original, nil
		}
	}
	return original, false, nil
}
