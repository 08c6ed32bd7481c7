// Package engine drives draft-type-specific behavior: whose turn each pick
// number belongs to, how an automatic pick chooses its item, and the tick
// handling that keeps stalled drafts moving. All state transitions funnel
// through the same store transaction paths the client-facing service uses.
package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/draftforge/dynasty/go/internal/draft/lock"
	"github.com/draftforge/dynasty/go/internal/draft/orderpolicy"
	"github.com/draftforge/dynasty/go/internal/draft/pickstate"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/draft/validate"
	"github.com/draftforge/dynasty/go/internal/models"
)

// CompletionHooks runs the completion-time collaborators inside the pick
// transaction: roster population, league activation, schedule generation.
type CompletionHooks interface {
	OnDraftCompleted(ctx context.Context, tx *sql.Tx, draft *models.Draft, picks []models.DraftPick) error
}

// Directory answers the league/roster questions the engine cannot derive
// from draft tables alone.
type Directory interface {
	// RosterHasUser reports whether the roster is backed by a live user
	// account. Rosters without one are autopicked immediately.
	RosterHasUser(ctx context.Context, rosterID uuid.UUID) (bool, error)
	// IsDevyLeague gates the college player pool.
	IsDevyLeague(ctx context.Context, leagueID uuid.UUID) (bool, error)
	// LeagueSeason returns the league's current season label.
	LeagueSeason(ctx context.Context, leagueID uuid.UUID) (string, error)
}

type Engine struct {
	store  *store.Store
	locker *lock.Runner
	bus    eventbus.Publisher
	hooks  CompletionHooks
	dir    Directory
	clock  clockwork.Clock
}

func New(st *store.Store, locker *lock.Runner, bus eventbus.Publisher, hooks CompletionHooks, dir Directory, clock clockwork.Clock) *Engine {
	return &Engine{
		store:  st,
		locker: locker,
		bus:    bus,
		hooks:  hooks,
		dir:    dir,
		clock:  clock,
	}
}

// Clock exposes the engine's clock so the service shares one time source.
func (e *Engine) Clock() clockwork.Clock { return e.clock }

// Locker exposes the lock runner for the service's lifecycle operations.
func (e *Engine) Locker() *lock.Runner { return e.locker }

// Store exposes the typed store.
func (e *Engine) Store() *store.Store { return e.store }

// Bus exposes the post-commit publisher batches flush to.
func (e *Engine) Bus() eventbus.Publisher { return e.bus }

// turnContext is the fresh-state bundle every pick application re-reads
// under the lock before computing the next pick state.
type turnContext struct {
	draft  *models.Draft
	order  []models.DraftOrderEntry
	assets []models.PickAsset
	clocks pickstate.ChessClocks
}

func (e *Engine) readTurnContext(ctx context.Context, q *db.Queries, draftID uuid.UUID) (*turnContext, error) {
	draft, err := e.store.GetDraftForUpdate(ctx, q, draftID)
	if err != nil {
		return nil, err
	}
	order, err := e.store.ListDraftOrder(ctx, q, draftID)
	if err != nil {
		return nil, err
	}
	assets, err := e.store.ListPickAssets(ctx, q, draftID)
	if err != nil {
		return nil, err
	}
	tc := &turnContext{draft: draft, order: order, assets: assets}
	if draft.Settings.TimerMode == models.TimerModeChessClock {
		clocks, err := e.store.ListChessClocks(ctx, q, draftID)
		if err != nil {
			return nil, err
		}
		tc.clocks = clocks
	}
	return tc, nil
}

// validateTurn runs the pure pre-condition checks against the re-read
// state and maps the first violation to the error taxonomy.
func (e *Engine) validateTurn(tc *turnContext, rosterID uuid.UUID, isAutoPick bool) error {
	draft := tc.draft
	snap := validate.Snapshot{
		Status:         draft.Status,
		DraftType:      draft.DraftType,
		ScheduledAt:    draft.ScheduledAt,
		OrderConfirmed: draft.OrderConfirmed,
		CurrentPick:    draft.CurrentPick,
		PickDeadline:   draft.PickDeadline,
	}
	if draft.CurrentRosterID != nil {
		snap.CurrentPickerRosterID = *draft.CurrentRosterID
	}
	violations := validate.Pick(snap, rosterID, e.clock.Now(), isAutoPick)
	if len(violations) == 0 {
		return nil
	}
	switch violations[0] {
	case validate.DraftNotInProgress:
		return apperrors.Validation(apperrors.CodeDraftNotInProgress, string(draft.Status))
	case validate.DraftNotStartedYet:
		return apperrors.Validation(apperrors.CodeDraftNotStartedYet, "")
	case validate.OrderNotConfirmed:
		return apperrors.Validation(apperrors.CodeOrderNotConfirmed, "")
	case validate.NotYourTurn:
		return apperrors.Validation(apperrors.CodeNotYourTurn, "")
	case validate.PickDeadlinePassed:
		return apperrors.Validation(apperrors.CodePickDeadlinePassed, "")
	default:
		return apperrors.Internal(fmt.Sprintf("unknown violation %s", violations[0]), nil)
	}
}

// ApplyPick validates, inserts, and advances one player pick, then stages
// the resulting events on batch. Caller holds the DRAFT lock and the open
// transaction behind q.
func (e *Engine) ApplyPick(ctx context.Context, tx *sql.Tx, q *db.Queries, p store.PickParams, batch *eventbus.Batch) (*store.PickResult, error) {
	tc, err := e.readTurnContext(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	if err := e.validateTurn(tc, p.RosterID, p.IsAutoPick); err != nil {
		return nil, err
	}
	now := e.clock.Now()
	next, err := pickstate.Compute(tc.draft, tc.order, tc.assets, tc.clocks, now)
	if err != nil {
		return nil, err
	}

	p.ExpectedPickNumber = orDefault(p.ExpectedPickNumber, tc.draft.CurrentPick)
	p.Round, p.PickInRound = roundFor(tc.order, p.ExpectedPickNumber)

	res, err := e.store.MakePickAndAdvanceTx(ctx, q, p, next, now)
	if err != nil {
		return nil, err
	}
	if res.Replayed {
		return res, nil
	}
	if err := e.stagePickEvents(ctx, tx, q, tc, res, next, batch); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyAssetSelection is ApplyPick for a vet-draft pick-asset slot.
func (e *Engine) ApplyAssetSelection(ctx context.Context, tx *sql.Tx, q *db.Queries, p store.AssetSelectionParams, batch *eventbus.Batch) (*store.PickResult, error) {
	tc, err := e.readTurnContext(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	if err := e.validateTurn(tc, p.RosterID, p.IsAutoPick); err != nil {
		return nil, err
	}
	now := e.clock.Now()
	next, err := pickstate.Compute(tc.draft, tc.order, tc.assets, tc.clocks, now)
	if err != nil {
		return nil, err
	}

	p.ExpectedPickNumber = orDefault(p.ExpectedPickNumber, tc.draft.CurrentPick)
	p.Round, p.PickInRound = roundFor(tc.order, p.ExpectedPickNumber)

	res, err := e.store.MakePickAssetSelectionTx(ctx, q, p, next, now)
	if err != nil {
		return nil, err
	}
	if res.Replayed {
		return res, nil
	}
	if err := e.stagePickEvents(ctx, tx, q, tc, res, next, batch); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyMatchupPick is ApplyPick for a matchups-draft slot.
func (e *Engine) ApplyMatchupPick(ctx context.Context, tx *sql.Tx, q *db.Queries, p store.MatchupPickParams, batch *eventbus.Batch) (*store.PickResult, error) {
	tc, err := e.readTurnContext(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	if tc.draft.DraftType != models.DraftTypeMatchups {
		return nil, apperrors.Validation(apperrors.CodeInvalidWeek, "not a matchups draft")
	}
	if p.Week < 1 || p.Week > tc.draft.Rounds {
		return nil, apperrors.Validation(apperrors.CodeInvalidWeek, fmt.Sprintf("week %d out of range", p.Week))
	}
	if err := e.validateTurn(tc, p.RosterID, p.IsAutoPick); err != nil {
		return nil, err
	}
	now := e.clock.Now()
	next, err := pickstate.Compute(tc.draft, tc.order, tc.assets, tc.clocks, now)
	if err != nil {
		return nil, err
	}

	p.ExpectedPickNumber = orDefault(p.ExpectedPickNumber, tc.draft.CurrentPick)
	p.Round, p.PickInRound = roundFor(tc.order, p.ExpectedPickNumber)

	res, err := e.store.MakeMatchupPickAndAdvanceTx(ctx, q, p, next, now)
	if err != nil {
		return nil, err
	}
	if res.Replayed {
		return res, nil
	}
	if err := e.stagePickEvents(ctx, tx, q, tc, res, next, batch); err != nil {
		return nil, err
	}
	return res, nil
}

// stagePickEvents collects the pick announcement, the queue update, and
// either the next-pick or the completion event. Enrichment reads run on the
// transaction's handle so the payload matches the committed state.
func (e *Engine) stagePickEvents(ctx context.Context, tx *sql.Tx, q *db.Queries, tc *turnContext, res *store.PickResult, next pickstate.NextState, batch *eventbus.Batch) error {
	pick := res.Pick
	payload := events.DraftPickPayload{
		DraftID:     pick.DraftID.String(),
		PickID:      pick.ID.String(),
		PickNumber:  pick.PickNumber,
		Round:       pick.Round,
		PickInRound: pick.PickInRound,
		RosterID:    pick.RosterID.String(),
		IsAutoPick:  pick.IsAutoPick,
		PickedAt:    pick.PickedAt,
	}
	queueUpdate := events.DraftQueueUpdatedPayload{
		DraftID:  pick.DraftID.String(),
		RosterID: pick.RosterID.String(),
		Action:   events.QueueActionRemoved,
	}
	if pick.PlayerID != nil {
		info, err := q.GetDraftPlayerInfo(ctx, *pick.PlayerID)
		if err != nil {
			return fmt.Errorf("enrich pick event: %w", err)
		}
		payload.PlayerID = info.ID.String()
		payload.PlayerName = info.FullName
		payload.PlayerPosition = info.Position.String
		payload.PlayerTeam = info.TeamCode.String
		queueUpdate.PlayerID = info.ID.String()
	}
	if md := pick.PickMetadata; md != nil {
		if md.PickAssetID != nil {
			payload.PickAssetID = md.PickAssetID.String()
			queueUpdate.PickAssetID = md.PickAssetID.String()
		}
		if md.OpponentRosterID != nil {
			payload.Week = md.Week
			payload.OpponentID = md.OpponentRosterID.String()
		}
	}
	if err := batch.Add(ctx, q, events.TypeDraftPick, payload); err != nil {
		return err
	}
	if err := batch.Add(ctx, q, events.TypeDraftQueueUpdated, queueUpdate); err != nil {
		return err
	}

	if next.Completed {
		return e.StageCompletion(ctx, tx, q, &res.Draft, batch)
	}
	return e.stageNextPick(ctx, q, tc.order, tc.assets, &res.Draft, batch)
}

// stageNextPick emits draft_next_pick from the advanced draft row.
func (e *Engine) stageNextPick(ctx context.Context, q *db.Queries, order []models.DraftOrderEntry, assets []models.PickAsset, draft *models.Draft, batch *eventbus.Batch) error {
	original, err := orderpolicy.OriginalPicker(order, draft.DraftType, draft.CurrentPick)
	if err != nil {
		return err
	}
	payload := events.DraftNextPickPayload{
		DraftID:          draft.ID.String(),
		CurrentPick:      draft.CurrentPick,
		CurrentRound:     draft.CurrentRound,
		OriginalRosterID: original.String(),
		PickDeadline:     draft.PickDeadline,
	}
	if draft.CurrentRosterID != nil {
		payload.CurrentRosterID = draft.CurrentRosterID.String()
		payload.IsTraded = *draft.CurrentRosterID != original
	}
	if draft.Settings.TimerMode == models.TimerModeChessClock {
		clocks, err := e.store.ListChessClocks(ctx, q, draft.ID)
		if err != nil {
			return err
		}
		for _, entry := range order {
			if remaining, ok := clocks[entry.RosterID]; ok {
				payload.ChessClocks = append(payload.ChessClocks, events.ChessClockBalance{
					RosterID:         entry.RosterID.String(),
					RemainingSeconds: remaining,
				})
			}
		}
	}
	return batch.Add(ctx, q, events.TypeDraftNextPick, payload)
}

// StageCompletion runs the completion collaborators inside the transaction
// and emits draft_completed.
func (e *Engine) StageCompletion(ctx context.Context, tx *sql.Tx, q *db.Queries, draft *models.Draft, batch *eventbus.Batch) error {
	picks, err := e.store.ListDraftPicks(ctx, q, draft.ID)
	if err != nil {
		return err
	}
	if err := e.hooks.OnDraftCompleted(ctx, tx, draft, picks); err != nil {
		return fmt.Errorf("completion hooks: %w", err)
	}

	var duration string
	completedAt := e.clock.Now()
	if draft.CompletedAt != nil {
		completedAt = *draft.CompletedAt
	}
	if draft.StartedAt != nil {
		duration = completedAt.Sub(*draft.StartedAt).String()
	}
	forward := 0
	for _, p := range picks {
		if p.PickNumber > 0 {
			forward++
		}
	}
	return batch.Add(ctx, q, events.TypeDraftCompleted, events.DraftCompletedPayload{
		DraftID:     draft.ID.String(),
		CompletedAt: completedAt,
		Duration:    duration,
		TotalPicks:  forward,
	})
}

func roundFor(order []models.DraftOrderEntry, pickNumber int) (round, pickInRound int) {
	n := len(order)
	if n == 0 {
		return 0, 0
	}
	return orderpolicy.RoundAndSlot(n, pickNumber)
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
