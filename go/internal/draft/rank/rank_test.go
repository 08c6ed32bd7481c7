package rank

import (
	"testing"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
)

func adp(v float64) *float64 { return &v }

func TestSort_AscendingADPNullsLast(t *testing.T) {
	a := models.Player{ID: uuid.New(), ADP: adp(5)}
	b := models.Player{ID: uuid.New(), ADP: adp(1)}
	c := models.Player{ID: uuid.New(), ADP: nil}
	players := []models.Player{a, c, b}

	Sort(players)

	if players[0].ID != b.ID || players[1].ID != a.ID || players[2].ID != c.ID {
		t.Fatalf("unexpected order: %v", players)
	}
}

func TestSort_NullADPTiesBrokenByID(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	if ids[0].String() > ids[1].String() {
		ids[0], ids[1] = ids[1], ids[0]
	}
	players := []models.Player{
		{ID: ids[1], ADP: nil},
		{ID: ids[0], ADP: nil},
	}
	Sort(players)
	if players[0].ID != ids[0] || players[1].ID != ids[1] {
		t.Fatalf("expected id tie-break ascending, got %v", players)
	}
}

func TestEligibleForPool_Veteran(t *testing.T) {
	p := models.Player{NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 3}}
	if !EligibleForPool(p, models.PlayerPoolVeteran, false) {
		t.Fatal("expected veteran with experience > 0 to be eligible")
	}
	rookie := models.Player{NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 0}}
	if EligibleForPool(rookie, models.PlayerPoolVeteran, false) {
		t.Fatal("rookie should not be eligible for the veteran pool")
	}
}

func TestEligibleForPool_Rookie(t *testing.T) {
	rookie := models.Player{NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 0}}
	if !EligibleForPool(rookie, models.PlayerPoolRookie, false) {
		t.Fatal("expected rookie to be eligible for the rookie pool")
	}
	veteran := models.Player{NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 5}}
	if EligibleForPool(veteran, models.PlayerPoolRookie, false) {
		t.Fatal("veteran should not be eligible for the rookie pool")
	}
}

func TestEligibleForPool_CollegeGatedByDevyMode(t *testing.T) {
	p := models.Player{IsCollegePlayer: true}
	if EligibleForPool(p, models.PlayerPoolCollege, false) {
		t.Fatal("college pool should be unavailable when devy mode is off")
	}
	if !EligibleForPool(p, models.PlayerPoolCollege, true) {
		t.Fatal("college pool should be available when devy mode is on")
	}
}

func TestBestAvailable_SkipsDraftedAndIneligible(t *testing.T) {
	veteran := models.Player{ID: uuid.New(), ADP: adp(2), NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 4}}
	drafted := models.Player{ID: uuid.New(), ADP: adp(1), NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 4}}
	rookie := models.Player{ID: uuid.New(), ADP: adp(50), NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 0}}

	draftedSet := map[string]bool{drafted.ID.String(): true}
	pools := []models.PlayerPool{models.PlayerPoolVeteran}

	got, ok := BestAvailable([]models.Player{veteran, drafted, rookie}, pools, false, draftedSet)
	if !ok {
		t.Fatal("expected a best-available player")
	}
	if got.ID != veteran.ID {
		t.Errorf("got %s, want %s", got.ID, veteran.ID)
	}
}

func TestBestAvailable_NoneLeft(t *testing.T) {
	p := models.Player{ID: uuid.New(), NFLPlayerProfile: &models.NFLPlayerProfile{Experience: 4}}
	drafted := map[string]bool{p.ID.String(): true}
	_, ok := BestAvailable([]models.Player{p}, []models.PlayerPool{models.PlayerPoolVeteran}, false, drafted)
	if ok {
		t.Fatal("expected no best-available player once the only candidate is drafted")
	}
}
