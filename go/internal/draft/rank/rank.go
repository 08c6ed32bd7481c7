// Package rank orders players by average draft position for
// best-available autopick selection.
package rank

import (
	"sort"

	"github.com/draftforge/dynasty/go/internal/models"
)

// Less reports whether a sorts before b: ascending ADP, nulls last, then
// ascending by id. This must match the store's
// "ORDER BY adp ASC NULLS LAST, id ASC" query exactly.
func Less(a, b models.Player) bool {
	switch {
	case a.ADP == nil && b.ADP == nil:
		return a.ID.String() < b.ID.String()
	case a.ADP == nil:
		return false
	case b.ADP == nil:
		return true
	case *a.ADP != *b.ADP:
		return *a.ADP < *b.ADP
	default:
		return a.ID.String() < b.ID.String()
	}
}

// Sort orders players in place by Less.
func Sort(players []models.Player) {
	sort.Slice(players, func(i, j int) bool { return Less(players[i], players[j]) })
}

// EligibleForPool reports whether a player may be drafted from the given
// pool. devyMode gates the college pool: a league not running devy rules
// never offers college players regardless of draft settings.
func EligibleForPool(p models.Player, pool models.PlayerPool, devyMode bool) bool {
	switch pool {
	case models.PlayerPoolVeteran:
		return p.NFLPlayerProfile != nil && p.NFLPlayerProfile.Experience > 0
	case models.PlayerPoolRookie:
		return p.NFLPlayerProfile != nil && p.NFLPlayerProfile.Experience == 0
	case models.PlayerPoolCollege:
		return devyMode && p.IsCollegePlayer
	default:
		return false
	}
}

// Eligible reports whether a player is draftable under any of the draft's
// configured pools.
func Eligible(p models.Player, pools []models.PlayerPool, devyMode bool) bool {
	for _, pool := range pools {
		if EligibleForPool(p, pool, devyMode) {
			return true
		}
	}
	return false
}

// BestAvailable returns the first ranked player eligible under pools and
// not present in drafted. Callers are expected to pass only active
// players; pool/drafted filtering is this function's job, status
// filtering is the caller's.
func BestAvailable(players []models.Player, pools []models.PlayerPool, devyMode bool, drafted map[string]bool) (*models.Player, bool) {
	candidates := make([]models.Player, 0, len(players))
	for _, p := range players {
		if drafted[p.ID.String()] {
			continue
		}
		if !Eligible(p, pools, devyMode) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil, false
	}
	Sort(candidates)
	return &candidates[0], true
}
