package engine

import (
	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/rank"
	"github.com/draftforge/dynasty/go/internal/models"
)

// AutoPickReason records why the engine picked on a roster's behalf.
// Priority when several apply: empty roster, then autodraft, then timeout.
type AutoPickReason string

const (
	ReasonEmptyRoster AutoPickReason = "empty_roster"
	ReasonAutodraft   AutoPickReason = "autodraft"
	ReasonTimeout     AutoPickReason = "timeout"
)

// Selection is the item an autopick chose: exactly one field is set.
type Selection struct {
	PlayerID    *uuid.UUID
	PickAssetID *uuid.UUID
}

// selectFromQueue walks the picker's queue in position order and returns
// the first entry whose referent is still available. Consumed referents
// (player drafted, asset selected) are skipped, not removed; dequeue
// happens when the pick commits.
func selectFromQueue(queue []models.DraftQueueEntry, drafted map[uuid.UUID]bool, selectedAssets map[uuid.UUID]bool) (Selection, bool) {
	for _, entry := range queue {
		if entry.PlayerID != nil {
			if drafted[*entry.PlayerID] {
				continue
			}
			id := *entry.PlayerID
			return Selection{PlayerID: &id}, true
		}
		if entry.PickAssetID != nil {
			if selectedAssets[*entry.PickAssetID] {
				continue
			}
			id := *entry.PickAssetID
			return Selection{PickAssetID: &id}, true
		}
	}
	return Selection{}, false
}

// selectAutopick implements the full selection order: queued preference,
// then best available player by ADP, then -- for vet drafts with rookie
// picks enabled -- the first available pick asset.
func selectAutopick(
	queue []models.DraftQueueEntry,
	drafted map[uuid.UUID]bool,
	selectedAssets map[uuid.UUID]bool,
	pool []models.Player,
	settings models.DraftSettings,
	devyLeague bool,
	rookieAssets []models.PickAsset,
) (Selection, bool) {
	if sel, ok := selectFromQueue(queue, drafted, selectedAssets); ok {
		return sel, true
	}

	draftedStr := make(map[string]bool, len(drafted))
	for id := range drafted {
		draftedStr[id.String()] = true
	}
	if best, ok := rank.BestAvailable(pool, settings.PlayerPool, devyLeague, draftedStr); ok {
		id := best.ID
		return Selection{PlayerID: &id}, true
	}

	if settings.IncludeRookiePicks {
		for _, asset := range rookieAssets {
			if selectedAssets[asset.ID] {
				continue
			}
			id := asset.ID
			return Selection{PickAssetID: &id}, true
		}
	}
	return Selection{}, false
}

// selectMatchup chooses the lowest open week for the picker and the first
// opponent (by draft position) with that week also open. filled maps
// roster -> set of weeks already scheduled, counting both forward and
// reciprocal rows.
func selectMatchup(
	order []models.DraftOrderEntry,
	picker uuid.UUID,
	rounds int,
	filled map[uuid.UUID]map[int]bool,
) (week int, opponent uuid.UUID, ok bool) {
	for w := 1; w <= rounds; w++ {
		if filled[picker][w] {
			continue
		}
		for _, entry := range order {
			if entry.RosterID == picker {
				continue
			}
			if filled[entry.RosterID][w] {
				continue
			}
			return w, entry.RosterID, true
		}
	}
	return 0, uuid.Nil, false
}

// matchupFillMap folds pick rows into the roster -> filled-weeks map
// selectMatchup consumes.
func matchupFillMap(picks []models.DraftPick) map[uuid.UUID]map[int]bool {
	filled := make(map[uuid.UUID]map[int]bool)
	for _, p := range picks {
		if p.PickMetadata == nil || p.PickMetadata.OpponentRosterID == nil {
			continue
		}
		if filled[p.RosterID] == nil {
			filled[p.RosterID] = make(map[int]bool)
		}
		filled[p.RosterID][p.PickMetadata.Week] = true
	}
	return filled
}
