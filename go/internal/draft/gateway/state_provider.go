package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/models"
)

// DraftStateProvider implements StateProvider over the draft store. Reads
// here are display hints; they take no locks.
type DraftStateProvider struct {
	store *store.Store
}

func NewDraftStateProvider(st *store.Store) *DraftStateProvider {
	return &DraftStateProvider{store: st}
}

// GetDraftState retrieves the complete state of a draft for a client that
// just connected or reconnected.
func (p *DraftStateProvider) GetDraftState(ctx context.Context, draftID uuid.UUID) (*DraftStateResponse, error) {
	q := p.store.Hint()
	draft, err := p.store.GetDraft(ctx, q, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	order, err := p.store.ListDraftOrder(ctx, q, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft order: %w", err)
	}
	picks, err := p.store.ListDraftPicks(ctx, q, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft picks: %w", err)
	}

	completed := 0
	var recent []models.DraftPick
	for _, pick := range picks {
		if pick.PickNumber > 0 {
			completed++
			recent = append(recent, pick)
		}
	}
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	response := &DraftStateResponse{
		DraftID:        draftID.String(),
		Status:         string(draft.Status),
		TotalPicks:     draft.TotalPicks(len(order)),
		CompletedPicks: completed,
		RecentPicks:    make([]RecentPickInfo, 0, len(recent)),
		Metadata: map[string]interface{}{
			"league_id":    draft.LeagueID.String(),
			"draft_type":   string(draft.DraftType),
			"total_rounds": draft.Rounds,
			"total_teams":  len(order),
		},
	}

	for _, pick := range recent {
		info := RecentPickInfo{
			PickID:      pick.ID.String(),
			TeamID:      pick.RosterID.String(),
			Round:       pick.Round,
			Pick:        pick.PickInRound,
			OverallPick: pick.PickNumber,
			MadeAt:      pick.PickedAt,
		}
		if pick.PlayerID != nil {
			info.PlayerID = pick.PlayerID.String()
		}
		response.RecentPicks = append(response.RecentPicks, info)
	}

	if draft.Status == models.DraftStatusInProgress && draft.CurrentRosterID != nil {
		current := &CurrentPickInfo{
			TeamID:      draft.CurrentRosterID.String(),
			Round:       draft.CurrentRound,
			OverallPick: draft.CurrentPick,
			TimePerPick: draft.PickTimeSeconds,
		}
		if draft.PickDeadline != nil {
			current.TimeoutAt = *draft.PickDeadline
			current.StartedAt = draft.PickDeadline.Add(-time.Duration(draft.PickTimeSeconds) * time.Second)
			remaining := int(time.Until(*draft.PickDeadline).Seconds())
			if remaining < 0 {
				remaining = 0
			}
			response.TimeRemaining = &remaining
		}
		response.CurrentPick = current
	}

	return response, nil
}

// GetActiveDrafts lists the drafts currently in progress.
func (p *DraftStateProvider) GetActiveDrafts(ctx context.Context) ([]DraftSummary, error) {
	rows, err := p.store.Hint().ListInProgressDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list in-progress drafts: %w", err)
	}
	summaries := make([]DraftSummary, 0, len(rows))
	for _, row := range rows {
		draft, err := store.DraftFromRow(row)
		if err != nil {
			return nil, err
		}
		summary := DraftSummary{
			DraftID:  draft.ID.String(),
			LeagueID: draft.LeagueID.String(),
			Status:   string(draft.Status),
		}
		if draft.StartedAt != nil {
			summary.StartedAt = draft.StartedAt
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
