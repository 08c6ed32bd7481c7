package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/draftforge/dynasty/go/internal/draft/pickstate"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TickAction names what a tick did.
type TickAction string

const (
	ActionNone          TickAction = "none"
	ActionStaleRecovery TickAction = "stale_recovery"
	ActionAutoPick      TickAction = "auto_pick"
)

// TickResult reports one tick's outcome.
type TickResult struct {
	Action TickAction
	Reason AutoPickReason
	Pick   *models.DraftPick
}

// Tick inspects one draft and, when its current pick is overdue (deadline
// expired, autodraft enabled, or the roster has no user), makes the pick on
// the roster's behalf. Stale state -- a pick row already recorded for the
// current counter -- is repaired by advancing without inserting.
func (e *Engine) Tick(ctx context.Context, draftID uuid.UUID) (TickResult, error) {
	// Cheap pre-check off the pool before taking the lock.
	hint, err := e.store.GetDraft(ctx, e.store.Hint(), draftID)
	if err != nil {
		return TickResult{}, err
	}
	if hint.Status != models.DraftStatusInProgress {
		return TickResult{Action: ActionNone}, nil
	}
	if paused, err := inOvernightWindow(hint, e.clock.Now()); err != nil {
		return TickResult{}, err
	} else if paused {
		return TickResult{Action: ActionNone}, nil
	}

	result := TickResult{Action: ActionNone}
	batch := eventbus.NewBatch(draftID)

	acquired, err := e.locker.TryWithDraftLock(ctx, draftID, func(ctx context.Context) error {
		return e.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
			r, err := e.tickLocked(ctx, tx, q, draftID, batch)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
	})
	if err != nil {
		return TickResult{}, err
	}
	if !acquired {
		// A client pick or another tick owns the draft right now; the next
		// scheduler pass retries.
		return TickResult{Action: ActionNone}, nil
	}

	batch.Flush(ctx, e.bus)
	return result, nil
}

func (e *Engine) tickLocked(ctx context.Context, tx *sql.Tx, q *db.Queries, draftID uuid.UUID, batch *eventbus.Batch) (TickResult, error) {
	tc, err := e.readTurnContext(ctx, q, draftID)
	if err != nil {
		return TickResult{}, err
	}
	draft := tc.draft
	now := e.clock.Now()

	if draft.Status != models.DraftStatusInProgress {
		return TickResult{Action: ActionNone}, nil
	}
	if paused, err := inOvernightWindow(draft, now); err != nil {
		return TickResult{}, err
	} else if paused {
		return TickResult{Action: ActionNone}, nil
	}

	// Stale-state recovery: a pick row for the current counter means a
	// previous transaction advanced the picks but not the draft row.
	existing, err := e.store.GetPickByNumber(ctx, q, draftID, draft.CurrentPick)
	if err != nil {
		return TickResult{}, err
	}
	if existing != nil {
		next, err := pickstate.Compute(draft, tc.order, tc.assets, tc.clocks, now)
		if err != nil {
			return TickResult{}, err
		}
		updated, err := e.store.ApplyNextState(ctx, q, draft, next, now)
		if err != nil {
			return TickResult{}, err
		}
		if next.Completed {
			if err := e.StageCompletion(ctx, tx, q, updated, batch); err != nil {
				return TickResult{}, err
			}
		} else {
			if err := e.stageNextPick(ctx, q, tc.order, tc.assets, updated, batch); err != nil {
				return TickResult{}, err
			}
		}
		log.Warn().
			Str("draft_id", draftID.String()).
			Int("pick", draft.CurrentPick).
			Msg("recovered stale draft state")
		return TickResult{Action: ActionStaleRecovery}, nil
	}

	reason, ok, err := e.tickReason(ctx, draft, tc.order)
	if err != nil {
		return TickResult{}, err
	}
	if !ok {
		return TickResult{Action: ActionNone}, nil
	}

	res, err := e.autoPick(ctx, tx, q, tc, reason, batch)
	if err != nil {
		return TickResult{}, err
	}

	// A timeout on a roster that never opted into autodraft flips the flag
	// so the draft keeps moving without waiting out every deadline.
	if reason == ReasonTimeout && draft.CurrentRosterID != nil {
		if entry, found := orderEntryFor(tc.order, *draft.CurrentRosterID); found && !entry.IsAutodraftEnabled {
			if err := e.store.SetAutodraftEnabled(ctx, q, draftID, *draft.CurrentRosterID, true); err != nil {
				return TickResult{}, err
			}
			if err := batch.Add(ctx, q, events.TypeAutodraftToggled, events.AutodraftToggledPayload{
				DraftID:  draftID.String(),
				RosterID: draft.CurrentRosterID.String(),
				Enabled:  true,
				Forced:   true,
			}); err != nil {
				return TickResult{}, err
			}
		}
	}

	return TickResult{Action: ActionAutoPick, Reason: reason, Pick: &res.Pick}, nil
}

// tickReason decides whether the current pick is overdue and why.
func (e *Engine) tickReason(ctx context.Context, draft *models.Draft, order []models.DraftOrderEntry) (AutoPickReason, bool, error) {
	if draft.CurrentRosterID == nil {
		return "", false, nil
	}
	hasUser, err := e.dir.RosterHasUser(ctx, *draft.CurrentRosterID)
	if err != nil {
		return "", false, fmt.Errorf("roster user lookup: %w", err)
	}
	if !hasUser {
		return ReasonEmptyRoster, true, nil
	}
	if entry, found := orderEntryFor(order, *draft.CurrentRosterID); found && entry.IsAutodraftEnabled {
		return ReasonAutodraft, true, nil
	}
	if draft.PickDeadline != nil && e.clock.Now().After(*draft.PickDeadline) {
		return ReasonTimeout, true, nil
	}
	return "", false, nil
}

// autoPick selects an item for the current picker and inserts it through
// the same transactional path a client pick takes.
func (e *Engine) autoPick(ctx context.Context, tx *sql.Tx, q *db.Queries, tc *turnContext, reason AutoPickReason, batch *eventbus.Batch) (*store.PickResult, error) {
	draft := tc.draft
	picker := *draft.CurrentRosterID

	// Autopicks are idempotency-keyed by slot so a retried tick after a
	// transient failure replays instead of double-inserting.
	key := fmt.Sprintf("autopick:%s:%d", draft.ID, draft.CurrentPick)

	if draft.DraftType == models.DraftTypeMatchups {
		picks, err := e.store.ListDraftPicks(ctx, q, draft.ID)
		if err != nil {
			return nil, err
		}
		week, opponent, ok := selectMatchup(tc.order, picker, draft.Rounds, matchupFillMap(picks))
		if !ok {
			return nil, fmt.Errorf("no open matchup slot for roster %s", picker)
		}
		return e.ApplyMatchupPick(ctx, tx, q, store.MatchupPickParams{
			DraftID:            draft.ID,
			ExpectedPickNumber: draft.CurrentPick,
			RosterID:           picker,
			Week:               week,
			OpponentRosterID:   opponent,
			IdempotencyKey:     &key,
			IsAutoPick:         true,
		}, batch)
	}

	queue, err := e.store.ListQueueForRoster(ctx, q, draft.ID, picker)
	if err != nil {
		return nil, err
	}
	drafted, err := e.store.DraftedPlayerIDs(ctx, q, draft.ID)
	if err != nil {
		return nil, err
	}
	selections, err := e.store.ListVetSelections(ctx, q, draft.ID)
	if err != nil {
		return nil, err
	}
	selectedAssets := make(map[uuid.UUID]bool, len(selections))
	for _, sel := range selections {
		selectedAssets[sel.DraftPickAssetID] = true
	}

	pool, err := e.availablePlayers(ctx, q, draft.ID)
	if err != nil {
		return nil, err
	}
	devy, err := e.dir.IsDevyLeague(ctx, draft.LeagueID)
	if err != nil {
		return nil, err
	}

	var rookieAssets []models.PickAsset
	if draft.Settings.IncludeRookiePicks {
		season := draft.Settings.RookiePicksSeason
		if season == "" {
			season, err = e.dir.LeagueSeason(ctx, draft.LeagueID)
			if err != nil {
				return nil, err
			}
		}
		rows, err := q.ListUnattachedRookiePickAssets(ctx, db.ListUnattachedRookiePickAssetsParams{
			LeagueID: draft.LeagueID,
			Season:   season,
		})
		if err != nil {
			return nil, fmt.Errorf("list rookie pick assets: %w", err)
		}
		for _, row := range rows {
			rookieAssets = append(rookieAssets, models.PickAsset{
				ID:                   row.ID,
				LeagueID:             row.LeagueID,
				Season:               row.Season,
				Round:                int(row.Round),
				OriginalRosterID:     row.OriginalRosterID,
				CurrentOwnerRosterID: row.CurrentOwnerRosterID,
			})
		}
	}

	sel, ok := selectAutopick(queue, drafted, selectedAssets, pool, draft.Settings, devy, rookieAssets)
	if !ok {
		return nil, fmt.Errorf("no draftable item available for roster %s", picker)
	}

	if sel.PickAssetID != nil {
		return e.ApplyAssetSelection(ctx, tx, q, store.AssetSelectionParams{
			DraftID:            draft.ID,
			ExpectedPickNumber: draft.CurrentPick,
			RosterID:           picker,
			PickAssetID:        *sel.PickAssetID,
			IdempotencyKey:     &key,
			IsAutoPick:         true,
		}, batch)
	}
	return e.ApplyPick(ctx, tx, q, store.PickParams{
		DraftID:            draft.ID,
		ExpectedPickNumber: draft.CurrentPick,
		RosterID:           picker,
		PlayerID:           sel.PlayerID,
		IdempotencyKey:     &key,
		IsAutoPick:         true,
	}, batch)
}

// availablePlayers maps the ranked pool query into domain players.
func (e *Engine) availablePlayers(ctx context.Context, q *db.Queries, draftID uuid.UUID) ([]models.Player, error) {
	rows, err := q.ListAvailableDraftPlayers(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list available players: %w", err)
	}
	out := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		p := models.Player{
			ID:              row.ID,
			FullName:        row.FullName,
			IsCollegePlayer: row.IsCollegePlayer,
		}
		if row.Adp.Valid {
			adp := row.Adp.Float64
			p.ADP = &adp
		}
		if row.Position.Valid || row.Experience.Valid {
			p.NFLPlayerProfile = &models.NFLPlayerProfile{
				PlayerID:   row.ID,
				Position:   row.Position.String,
				Status:     row.Status.String,
				Experience: int(row.Experience.Int32),
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func orderEntryFor(order []models.DraftOrderEntry, rosterID uuid.UUID) (models.DraftOrderEntry, bool) {
	for _, entry := range order {
		if entry.RosterID == rosterID {
			return entry, true
		}
	}
	return models.DraftOrderEntry{}, false
}
