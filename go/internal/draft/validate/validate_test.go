package validate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

func TestPick_NotInProgressIsTerminal(t *testing.T) {
	snap := Snapshot{Status: models.DraftStatusPaused, OrderConfirmed: false}
	got := Pick(snap, uuid.New(), time.Now(), false)
	if len(got) != 1 || got[0] != DraftNotInProgress {
		t.Fatalf("got %v, want [DRAFT_NOT_IN_PROGRESS] only", got)
	}
}

func TestPick_NotYourTurnSuppressedForAutopick(t *testing.T) {
	roster := uuid.New()
	other := uuid.New()
	snap := Snapshot{
		Status:                models.DraftStatusInProgress,
		DraftType:              models.DraftTypeSnake,
		OrderConfirmed:         true,
		CurrentPickerRosterID:  other,
	}
	got := Pick(snap, roster, time.Now(), true)
	for _, v := range got {
		if v == NotYourTurn {
			t.Fatal("NOT_YOUR_TURN should be suppressed for autopicks")
		}
	}
}

func TestPick_NotYourTurnForClientPick(t *testing.T) {
	roster := uuid.New()
	other := uuid.New()
	snap := Snapshot{
		Status:                models.DraftStatusInProgress,
		DraftType:              models.DraftTypeSnake,
		OrderConfirmed:         true,
		CurrentPickerRosterID:  other,
	}
	got := Pick(snap, roster, time.Now(), false)
	found := false
	for _, v := range got {
		if v == NotYourTurn {
			found = true
		}
	}
	if !found {
		t.Fatal("expected NOT_YOUR_TURN")
	}
}

func TestPick_OrderNotConfirmedSkippedForAuction(t *testing.T) {
	roster := uuid.New()
	snap := Snapshot{
		Status:                models.DraftStatusInProgress,
		DraftType:              models.DraftTypeAuction,
		OrderConfirmed:         false,
		CurrentPickerRosterID:  roster,
	}
	got := Pick(snap, roster, time.Now(), false)
	for _, v := range got {
		if v == OrderNotConfirmed {
			t.Fatal("ORDER_NOT_CONFIRMED does not apply to auction drafts")
		}
	}
}

func TestPick_DeadlinePassed(t *testing.T) {
	roster := uuid.New()
	past := time.Now().Add(-time.Minute)
	snap := Snapshot{
		Status:                models.DraftStatusInProgress,
		DraftType:              models.DraftTypeSnake,
		OrderConfirmed:         true,
		CurrentPickerRosterID:  roster,
		PickDeadline:           &past,
	}
	got := Pick(snap, roster, time.Now(), false)
	found := false
	for _, v := range got {
		if v == PickDeadlinePassed {
			found = true
		}
	}
	if !found {
		t.Fatal("expected PICK_DEADLINE_PASSED")
	}

	// Autopicks fire because the deadline expired; the check must not
	// apply to them.
	got = Pick(snap, roster, time.Now(), true)
	for _, v := range got {
		if v == PickDeadlinePassed {
			t.Fatal("PICK_DEADLINE_PASSED must be suppressed for autopicks")
		}
	}
}

func TestPick_CleanPickHasNoViolations(t *testing.T) {
	roster := uuid.New()
	future := time.Now().Add(time.Minute)
	snap := Snapshot{
		Status:                models.DraftStatusInProgress,
		DraftType:              models.DraftTypeSnake,
		OrderConfirmed:         true,
		CurrentPickerRosterID:  roster,
		PickDeadline:           &future,
	}
	got := Pick(snap, roster, time.Now(), false)
	if len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}
