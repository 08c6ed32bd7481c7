package pickstate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

func TestCompute_CompletesAfterLastPick(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	order := []models.DraftOrderEntry{
		{RosterID: ids[0], DraftPosition: 1},
		{RosterID: ids[1], DraftPosition: 2},
		{RosterID: ids[2], DraftPosition: 3},
	}
	draft := &models.Draft{
		DraftType:   models.DraftTypeSnake,
		Rounds:      2,
		CurrentPick: 6,
		Settings:    models.DraftSettings{},
	}

	got, err := Compute(draft, order, nil, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected draft to be completed after the last pick")
	}
}

func TestCompute_PerPickDeadline(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	order := []models.DraftOrderEntry{
		{RosterID: ids[0], DraftPosition: 1},
		{RosterID: ids[1], DraftPosition: 2},
	}
	draft := &models.Draft{
		DraftType:       models.DraftTypeSnake,
		Rounds:          2,
		CurrentPick:     1,
		PickTimeSeconds: 90,
		Settings:        models.DraftSettings{},
	}
	now := time.Now()

	got, err := Compute(draft, order, nil, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Completed {
		t.Fatal("did not expect completion")
	}
	if got.RosterID != ids[1] {
		t.Errorf("pick 2 should go to %s, got %s", ids[1], got.RosterID)
	}
	wantDeadline := now.Add(90 * time.Second)
	if !got.Deadline.Equal(wantDeadline) {
		t.Errorf("deadline = %v, want %v", got.Deadline, wantDeadline)
	}
}

func TestCompute_ChessClockUsesRemainingBudget(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	order := []models.DraftOrderEntry{
		{RosterID: ids[0], DraftPosition: 1},
		{RosterID: ids[1], DraftPosition: 2},
	}
	draft := &models.Draft{
		DraftType:   models.DraftTypeSnake,
		Rounds:      2,
		CurrentPick: 1,
		Settings: models.DraftSettings{
			TimerMode:                models.TimerModeChessClock,
			ChessClockMinPickSeconds: 10,
		},
	}
	now := time.Now()
	clocks := ChessClocks{ids[1]: 45}

	got, err := Compute(draft, order, nil, clocks, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.Add(45 * time.Second); !got.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", got.Deadline, want)
	}
}

func TestCompute_ChessClockFallsBackToMinimum(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	order := []models.DraftOrderEntry{
		{RosterID: ids[0], DraftPosition: 1},
		{RosterID: ids[1], DraftPosition: 2},
	}
	draft := &models.Draft{
		DraftType:   models.DraftTypeSnake,
		Rounds:      2,
		CurrentPick: 1,
		Settings: models.DraftSettings{
			TimerMode:                models.TimerModeChessClock,
			ChessClockMinPickSeconds: 10,
		},
	}
	now := time.Now()
	clocks := ChessClocks{ids[1]: 0}

	got, err := Compute(draft, order, nil, clocks, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.Add(10 * time.Second); !got.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", got.Deadline, want)
	}
}
