package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

func playerWithADP(adp float64, exp int) models.Player {
	return models.Player{
		ID:  uuid.New(),
		ADP: &adp,
		NFLPlayerProfile: &models.NFLPlayerProfile{
			Experience: exp,
		},
	}
}

func queuePlayerEntry(playerID uuid.UUID, pos int) models.DraftQueueEntry {
	return models.DraftQueueEntry{ID: uuid.New(), PlayerID: &playerID, QueuePosition: pos}
}

func TestSelectFromQueueSkipsConsumedEntries(t *testing.T) {
	taken := uuid.New()
	wanted := uuid.New()
	selectedAsset := uuid.New()

	queue := []models.DraftQueueEntry{
		queuePlayerEntry(taken, 1),
		{ID: uuid.New(), PickAssetID: &selectedAsset, QueuePosition: 2},
		queuePlayerEntry(wanted, 3),
	}
	drafted := map[uuid.UUID]bool{taken: true}
	assets := map[uuid.UUID]bool{selectedAsset: true}

	sel, ok := selectFromQueue(queue, drafted, assets)
	if !ok {
		t.Fatal("expected a queue selection")
	}
	if sel.PlayerID == nil || *sel.PlayerID != wanted {
		t.Errorf("expected third entry %s, got %+v", wanted, sel)
	}
}

func TestSelectAutopickPrefersQueueOverADP(t *testing.T) {
	best := playerWithADP(1.0, 3)
	queued := playerWithADP(50.0, 3)
	pool := []models.Player{best, queued}

	queue := []models.DraftQueueEntry{queuePlayerEntry(queued.ID, 1)}
	settings := models.DraftSettings{}.WithDefaults()

	sel, ok := selectAutopick(queue, nil, nil, pool, settings, false, nil)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.PlayerID == nil || *sel.PlayerID != queued.ID {
		t.Error("queued preference must beat best-available ADP")
	}
}

func TestSelectAutopickFallsBackToBestAvailable(t *testing.T) {
	second := playerWithADP(12.5, 5)
	first := playerWithADP(3.2, 2)
	nilADP := models.Player{ID: uuid.New(), NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 1}}

	pool := []models.Player{second, nilADP, first}
	settings := models.DraftSettings{}.WithDefaults()

	sel, ok := selectAutopick(nil, nil, nil, pool, settings, false, nil)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.PlayerID == nil || *sel.PlayerID != first.ID {
		t.Error("best available must be lowest ADP with nulls last")
	}
}

func TestSelectAutopickRespectsPool(t *testing.T) {
	rookie := playerWithADP(1.0, 0)
	vet := playerWithADP(2.0, 4)
	pool := []models.Player{rookie, vet}

	settings := models.DraftSettings{PlayerPool: []models.PlayerPool{models.PlayerPoolVeteran}}.WithDefaults()

	sel, ok := selectAutopick(nil, nil, nil, pool, settings, false, nil)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.PlayerID == nil || *sel.PlayerID != vet.ID {
		t.Error("veteran-only pool must skip the rookie despite better ADP")
	}
}

func TestSelectAutopickFallsThroughToRookieAsset(t *testing.T) {
	// Veteran-only pool with no players left: vet+rookie-picks mode falls
	// through to the first available pick asset.
	settings := models.DraftSettings{
		PlayerPool:         []models.PlayerPool{models.PlayerPoolVeteran},
		IncludeRookiePicks: true,
	}.WithDefaults()

	selected := uuid.New()
	available := uuid.New()
	rookieAssets := []models.PickAsset{
		{ID: selected, Round: 1},
		{ID: available, Round: 2},
	}
	selectedAssets := map[uuid.UUID]bool{selected: true}

	sel, ok := selectAutopick(nil, nil, selectedAssets, nil, settings, false, rookieAssets)
	if !ok {
		t.Fatal("expected an asset selection")
	}
	if sel.PickAssetID == nil || *sel.PickAssetID != available {
		t.Errorf("expected asset %s, got %+v", available, sel)
	}
}

func TestSelectAutopickNothingAvailable(t *testing.T) {
	settings := models.DraftSettings{}.WithDefaults()
	if _, ok := selectAutopick(nil, nil, nil, nil, settings, false, nil); ok {
		t.Fatal("empty pool must yield no selection")
	}
}

func TestSelectMatchupLowestOpenWeek(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	order := []models.DraftOrderEntry{
		{RosterID: a, DraftPosition: 1},
		{RosterID: b, DraftPosition: 2},
		{RosterID: c, DraftPosition: 3},
	}

	// Picker a has week 1 filled; b has week 2 filled.
	filled := map[uuid.UUID]map[int]bool{
		a: {1: true},
		b: {2: true},
	}

	week, opponent, ok := selectMatchup(order, a, 4, filled)
	if !ok {
		t.Fatal("expected a matchup selection")
	}
	if week != 2 || opponent != c {
		t.Errorf("got week %d vs %s, want week 2 vs %s", week, opponent, c)
	}
}

func TestSelectMatchupAllWeeksFilled(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	order := []models.DraftOrderEntry{
		{RosterID: a, DraftPosition: 1},
		{RosterID: b, DraftPosition: 2},
	}
	filled := map[uuid.UUID]map[int]bool{
		a: {1: true, 2: true},
	}
	if _, _, ok := selectMatchup(order, a, 2, filled); ok {
		t.Fatal("no open week should yield no selection")
	}
}

func TestMatchupFillMapCountsBothSides(t *testing.T) {
	picker, opp := uuid.New(), uuid.New()
	picks := []models.DraftPick{
		{PickNumber: 3, RosterID: picker, PickMetadata: &models.PickMetadata{Week: 5, OpponentRosterID: &opp}},
		{PickNumber: -3, RosterID: opp, PickMetadata: &models.PickMetadata{Week: 5, OpponentRosterID: &picker}},
		{PickNumber: 4, RosterID: picker, PlayerID: nil},
	}
	filled := matchupFillMap(picks)
	if !filled[picker][5] || !filled[opp][5] {
		t.Error("both forward and reciprocal rows must mark the week filled")
	}
	if len(filled[picker]) != 1 {
		t.Errorf("picker filled weeks = %v", filled[picker])
	}
}
