package orderpolicy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

func threeRosterOrder() ([]models.DraftOrderEntry, []uuid.UUID) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	return []models.DraftOrderEntry{
		{RosterID: ids[0], DraftPosition: 1},
		{RosterID: ids[1], DraftPosition: 2},
		{RosterID: ids[2], DraftPosition: 3},
	}, ids
}

func TestOriginalPicker_Snake(t *testing.T) {
	order, ids := threeRosterOrder()

	// Picks 1..6 over 3 rosters, 2 rounds: 1,2,3,3,2,1
	want := []uuid.UUID{ids[0], ids[1], ids[2], ids[2], ids[1], ids[0]}
	for p := 1; p <= 6; p++ {
		got, err := OriginalPicker(order, models.DraftTypeSnake, p)
		if err != nil {
			t.Fatalf("pick %d: unexpected error: %v", p, err)
		}
		if got != want[p-1] {
			t.Errorf("pick %d: got %s, want %s", p, got, want[p-1])
		}
	}
}

func TestOriginalPicker_Linear(t *testing.T) {
	order, ids := threeRosterOrder()
	want := []uuid.UUID{ids[0], ids[1], ids[2], ids[0], ids[1], ids[2]}
	for p := 1; p <= 6; p++ {
		got, err := OriginalPicker(order, models.DraftTypeLinear, p)
		if err != nil {
			t.Fatalf("pick %d: unexpected error: %v", p, err)
		}
		if got != want[p-1] {
			t.Errorf("pick %d: got %s, want %s", p, got, want[p-1])
		}
	}
}

func TestOriginalPicker_RejectsUnsortedOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	order := []models.DraftOrderEntry{
		{RosterID: ids[0], DraftPosition: 2},
		{RosterID: ids[1], DraftPosition: 1},
	}
	if _, err := OriginalPicker(order, models.DraftTypeSnake, 1); err == nil {
		t.Fatal("expected error for unsorted draft order, got nil")
	}
}

func TestActualPicker_TradedPickRewritesOwner(t *testing.T) {
	order, ids := threeRosterOrder()
	traded := uuid.New()
	assets := []models.PickAsset{
		{Round: 1, OriginalRosterID: ids[0], CurrentOwnerRosterID: traded},
	}

	got, traded_, err := ActualPicker(order, models.DraftTypeSnake, 1, assets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != traded {
		t.Errorf("got picker %s, want traded owner %s", got, traded)
	}
	if !traded_ {
		t.Error("expected isTraded=true")
	}
}

func TestActualPicker_NoAssetRowFallsBackToOriginal(t *testing.T) {
	order, ids := threeRosterOrder()
	got, isTraded, err := ActualPicker(order, models.DraftTypeSnake, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ids[0] {
		t.Errorf("got %s, want %s", got, ids[0])
	}
	if isTraded {
		t.Error("expected isTraded=false with no asset rows")
	}
}
