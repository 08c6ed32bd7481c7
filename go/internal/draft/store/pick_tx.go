package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/pickstate"
	"github.com/draftforge/dynasty/go/internal/models"
)

// PickParams describes one pick insertion. ExpectedPickNumber is the pick
// the caller believes is current; a mismatch against the re-read row fails
// with PICK_CONFLICT.
type PickParams struct {
	DraftID            uuid.UUID
	ExpectedPickNumber int
	Round              int
	PickInRound        int
	RosterID           uuid.UUID
	PlayerID           *uuid.UUID
	Metadata           *models.PickMetadata
	IdempotencyKey     *string
	IsAutoPick         bool
}

// PickResult is what a pick transaction hands back to the caller for event
// enrichment.
type PickResult struct {
	Pick     models.DraftPick
	Draft    models.Draft
	Replayed bool // true when an idempotent retry returned the stored pick
}

// MakePickAndAdvanceTx inserts a player pick and advances the draft in one
// transaction. The caller holds the DRAFT advisory lock and has computed
// next from state re-read on the same transaction.
func (s *Store) MakePickAndAdvanceTx(ctx context.Context, q *db.Queries, p PickParams, next pickstate.NextState, now time.Time) (*PickResult, error) {
	draft, err := s.GetDraftForUpdate(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != models.DraftStatusInProgress {
		return nil, apperrors.Validation(apperrors.CodeDraftNotInProgress, string(draft.Status))
	}

	if p.IdempotencyKey != nil {
		row, err := q.GetDraftPickByIdempotencyKey(ctx, db.GetDraftPickByIdempotencyKeyParams{
			DraftID:        p.DraftID,
			IdempotencyKey: *p.IdempotencyKey,
		})
		switch {
		case err == nil:
			if row.RosterID != p.RosterID {
				return nil, apperrors.Conflict(apperrors.CodePickConflict, "idempotency key reused by another roster")
			}
			pick, convErr := pickToModel(row)
			if convErr != nil {
				return nil, convErr
			}
			return &PickResult{Pick: *pick, Draft: *draft, Replayed: true}, nil
		case errors.Is(err, sql.ErrNoRows):
			// first attempt, fall through
		default:
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	if draft.CurrentPick != p.ExpectedPickNumber {
		return nil, apperrors.Conflict(apperrors.CodePickConflict,
			fmt.Sprintf("expected pick %d, draft is at %d", p.ExpectedPickNumber, draft.CurrentPick))
	}
	if !p.IsAutoPick {
		if draft.CurrentRosterID == nil || *draft.CurrentRosterID != p.RosterID {
			return nil, apperrors.Validation(apperrors.CodeNotYourTurn, "")
		}
	}

	if p.PlayerID != nil {
		drafted, err := s.DraftedPlayerIDs(ctx, q, p.DraftID)
		if err != nil {
			return nil, err
		}
		if drafted[*p.PlayerID] {
			return nil, apperrors.Conflict(apperrors.CodePlayerAlreadyDrafted, p.PlayerID.String())
		}
	}

	pick, err := s.insertPick(ctx, q, p)
	if err != nil {
		return nil, err
	}

	if p.PlayerID != nil {
		if err := q.DeleteDraftQueueEntriesByPlayer(ctx, db.DeleteDraftQueueEntriesByPlayerParams{
			DraftID:  p.DraftID,
			PlayerID: *p.PlayerID,
		}); err != nil {
			return nil, fmt.Errorf("dequeue drafted player: %w", err)
		}
	}

	updated, err := s.ApplyNextState(ctx, q, draft, next, now)
	if err != nil {
		return nil, err
	}
	return &PickResult{Pick: *pick, Draft: *updated}, nil
}

// AssetSelectionParams describes a vet-draft slot spent on a pick asset.
type AssetSelectionParams struct {
	DraftID            uuid.UUID
	ExpectedPickNumber int
	Round              int
	PickInRound        int
	RosterID           uuid.UUID
	PickAssetID        uuid.UUID
	IdempotencyKey     *string
	IsAutoPick         bool
}

// MakePickAssetSelectionTx records a pick-asset selection: the slot is
// consumed, a selection row links pick to asset, and ownership transfers to
// the drafter. The asset's prior owner rides along in the pick metadata so
// undo can restore it.
func (s *Store) MakePickAssetSelectionTx(ctx context.Context, q *db.Queries, p AssetSelectionParams, next pickstate.NextState, now time.Time) (*PickResult, error) {
	draft, err := s.GetDraftForUpdate(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != models.DraftStatusInProgress {
		return nil, apperrors.Validation(apperrors.CodeDraftNotInProgress, string(draft.Status))
	}

	if p.IdempotencyKey != nil {
		row, err := q.GetDraftPickByIdempotencyKey(ctx, db.GetDraftPickByIdempotencyKeyParams{
			DraftID:        p.DraftID,
			IdempotencyKey: *p.IdempotencyKey,
		})
		switch {
		case err == nil:
			if row.RosterID != p.RosterID {
				return nil, apperrors.Conflict(apperrors.CodePickConflict, "idempotency key reused by another roster")
			}
			pick, convErr := pickToModel(row)
			if convErr != nil {
				return nil, convErr
			}
			return &PickResult{Pick: *pick, Draft: *draft, Replayed: true}, nil
		case errors.Is(err, sql.ErrNoRows):
		default:
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	if draft.CurrentPick != p.ExpectedPickNumber {
		return nil, apperrors.Conflict(apperrors.CodePickConflict,
			fmt.Sprintf("expected pick %d, draft is at %d", p.ExpectedPickNumber, draft.CurrentPick))
	}
	if !p.IsAutoPick {
		if draft.CurrentRosterID == nil || *draft.CurrentRosterID != p.RosterID {
			return nil, apperrors.Validation(apperrors.CodeNotYourTurn, "")
		}
	}

	asset, err := s.GetPickAsset(ctx, q, p.PickAssetID)
	if err != nil {
		return nil, err
	}
	if asset.LeagueID != draft.LeagueID {
		return nil, apperrors.Validation(apperrors.CodeNotInLeague, "pick asset belongs to another league")
	}

	selections, err := s.ListVetSelections(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	for _, sel := range selections {
		if sel.DraftPickAssetID == p.PickAssetID {
			return nil, apperrors.Conflict(apperrors.CodeAssetAlreadySelected, p.PickAssetID.String())
		}
	}

	prevOwner := asset.CurrentOwnerRosterID
	pick, err := s.insertPick(ctx, q, PickParams{
		DraftID:            p.DraftID,
		ExpectedPickNumber: p.ExpectedPickNumber,
		Round:              p.Round,
		PickInRound:        p.PickInRound,
		RosterID:           p.RosterID,
		Metadata: &models.PickMetadata{
			PickAssetID:       &p.PickAssetID,
			PrevOwnerRosterID: &prevOwner,
		},
		IdempotencyKey: p.IdempotencyKey,
		IsAutoPick:     p.IsAutoPick,
	})
	if err != nil {
		return nil, err
	}

	if err := q.InsertVetDraftPickSelection(ctx, db.InsertVetDraftPickSelectionParams{
		DraftID:          p.DraftID,
		DraftPickAssetID: p.PickAssetID,
		PickNumber:       int32(p.ExpectedPickNumber),
		RosterID:         p.RosterID,
	}); err != nil {
		return nil, fmt.Errorf("insert vet selection: %w", err)
	}
	if err := q.TransferPickAssetOwnership(ctx, db.TransferPickAssetOwnershipParams{
		ID:                   p.PickAssetID,
		CurrentOwnerRosterID: p.RosterID,
	}); err != nil {
		return nil, fmt.Errorf("transfer asset ownership: %w", err)
	}
	if err := q.DeleteDraftQueueEntriesByPickAsset(ctx, db.DeleteDraftQueueEntriesByPickAssetParams{
		DraftID:     p.DraftID,
		PickAssetID: p.PickAssetID,
	}); err != nil {
		return nil, fmt.Errorf("dequeue selected asset: %w", err)
	}

	updated, err := s.ApplyNextState(ctx, q, draft, next, now)
	if err != nil {
		return nil, err
	}
	return &PickResult{Pick: *pick, Draft: *updated}, nil
}

// MatchupPickParams describes one matchups-draft slot: the picker claims an
// opponent for a week.
type MatchupPickParams struct {
	DraftID            uuid.UUID
	ExpectedPickNumber int
	Round              int
	PickInRound        int
	RosterID           uuid.UUID
	Week               int
	OpponentRosterID   uuid.UUID
	IdempotencyKey     *string
	IsAutoPick         bool
}

// MakeMatchupPickAndAdvanceTx writes two pick rows: the forward pick for
// the picker and a reciprocal row (negated pick number, outside the
// counter sequence) for the opponent. A week already filled for either
// side rejects the pick.
func (s *Store) MakeMatchupPickAndAdvanceTx(ctx context.Context, q *db.Queries, p MatchupPickParams, next pickstate.NextState, now time.Time) (*PickResult, error) {
	draft, err := s.GetDraftForUpdate(ctx, q, p.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != models.DraftStatusInProgress {
		return nil, apperrors.Validation(apperrors.CodeDraftNotInProgress, string(draft.Status))
	}

	if p.IdempotencyKey != nil {
		row, err := q.GetDraftPickByIdempotencyKey(ctx, db.GetDraftPickByIdempotencyKeyParams{
			DraftID:        p.DraftID,
			IdempotencyKey: *p.IdempotencyKey,
		})
		switch {
		case err == nil:
			if row.RosterID != p.RosterID {
				return nil, apperrors.Conflict(apperrors.CodePickConflict, "idempotency key reused by another roster")
			}
			pick, convErr := pickToModel(row)
			if convErr != nil {
				return nil, convErr
			}
			return &PickResult{Pick: *pick, Draft: *draft, Replayed: true}, nil
		case errors.Is(err, sql.ErrNoRows):
		default:
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	if draft.CurrentPick != p.ExpectedPickNumber {
		return nil, apperrors.Conflict(apperrors.CodePickConflict,
			fmt.Sprintf("expected pick %d, draft is at %d", p.ExpectedPickNumber, draft.CurrentPick))
	}
	if !p.IsAutoPick {
		if draft.CurrentRosterID == nil || *draft.CurrentRosterID != p.RosterID {
			return nil, apperrors.Validation(apperrors.CodeNotYourTurn, "")
		}
	}
	if p.RosterID == p.OpponentRosterID {
		return nil, apperrors.Validation(apperrors.CodeInvalidWeek, "cannot schedule a matchup against yourself")
	}

	weekPicks, err := q.ListMatchupPicksForWeek(ctx, db.ListMatchupPicksForWeekParams{
		DraftID: p.DraftID,
		Week:    int32(p.Week),
	})
	if err != nil {
		return nil, fmt.Errorf("list matchup picks for week: %w", err)
	}
	for _, row := range weekPicks {
		if row.RosterID == p.RosterID || row.RosterID == p.OpponentRosterID {
			return nil, apperrors.Validation(apperrors.CodeInvalidWeek,
				fmt.Sprintf("week %d already filled", p.Week))
		}
	}

	opp := p.OpponentRosterID
	picker := p.RosterID
	pick, err := s.insertPick(ctx, q, PickParams{
		DraftID:            p.DraftID,
		ExpectedPickNumber: p.ExpectedPickNumber,
		Round:              p.Round,
		PickInRound:        p.PickInRound,
		RosterID:           p.RosterID,
		Metadata:           &models.PickMetadata{Week: p.Week, OpponentRosterID: &opp},
		IdempotencyKey:     p.IdempotencyKey,
		IsAutoPick:         p.IsAutoPick,
	})
	if err != nil {
		return nil, err
	}

	// Reciprocal row: negated pick number keeps it outside the forward
	// sequence so it never advances the counter.
	reciprocalMD, err := json.Marshal(models.PickMetadata{Week: p.Week, OpponentRosterID: &picker})
	if err != nil {
		return nil, fmt.Errorf("marshal reciprocal metadata: %w", err)
	}
	if _, err := q.InsertDraftPick(ctx, db.InsertDraftPickParams{
		ID:           uuid.New(),
		DraftID:      p.DraftID,
		PickNumber:   int32(-p.ExpectedPickNumber),
		Round:        int32(p.Round),
		PickInRound:  int32(p.PickInRound),
		RosterID:     p.OpponentRosterID,
		PickMetadata: reciprocalMD,
		IsAutoPick:   p.IsAutoPick,
	}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Conflict(apperrors.CodePickAlreadyMade, "reciprocal pick already exists")
		}
		return nil, fmt.Errorf("insert reciprocal pick: %w", err)
	}

	updated, err := s.ApplyNextState(ctx, q, draft, next, now)
	if err != nil {
		return nil, err
	}
	return &PickResult{Pick: *pick, Draft: *updated}, nil
}

func (s *Store) insertPick(ctx context.Context, q *db.Queries, p PickParams) (*models.DraftPick, error) {
	var md json.RawMessage
	if p.Metadata != nil {
		raw, err := json.Marshal(p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("marshal pick metadata: %w", err)
		}
		md = raw
	}
	row, err := q.InsertDraftPick(ctx, db.InsertDraftPickParams{
		ID:             uuid.New(),
		DraftID:        p.DraftID,
		PickNumber:     int32(p.ExpectedPickNumber),
		Round:          int32(p.Round),
		PickInRound:    int32(p.PickInRound),
		RosterID:       p.RosterID,
		PlayerID:       nullUUID(p.PlayerID),
		PickMetadata:   md,
		IsAutoPick:     p.IsAutoPick,
		IdempotencyKey: nullString(p.IdempotencyKey),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// ON CONFLICT DO NOTHING scanned zero rows: another writer owns
			// this pick number.
			return nil, apperrors.Conflict(apperrors.CodePickAlreadyMade,
				fmt.Sprintf("pick %d already recorded", p.ExpectedPickNumber))
		}
		return nil, fmt.Errorf("insert pick: %w", err)
	}
	return pickToModel(row)
}

// ApplyNextState writes the computed next-pick pointers, charging the
// outgoing picker's chess clock first when that timer mode is active.
func (s *Store) ApplyNextState(ctx context.Context, q *db.Queries, draft *models.Draft, next pickstate.NextState, now time.Time) (*models.Draft, error) {
	if draft.Settings.TimerMode == models.TimerModeChessClock {
		if err := s.chargeChessClock(ctx, q, draft, now); err != nil {
			return nil, err
		}
	}

	if next.Completed {
		row, err := q.CompleteDraft(ctx, draft.ID)
		if err != nil {
			return nil, fmt.Errorf("complete draft: %w", err)
		}
		return draftToModel(row)
	}

	state := draft.DraftState
	turnStarted := now
	state.TurnStartedAt = &turnStarted
	state.RemainingSeconds = nil
	stateJSON, err := marshalDraftState(state)
	if err != nil {
		return nil, err
	}

	deadline := next.Deadline
	row, err := q.AdvanceDraftTurn(ctx, db.AdvanceDraftTurnParams{
		ID:              draft.ID,
		CurrentPick:     int32(next.PickNumber),
		CurrentRound:    int32(next.Round),
		CurrentRosterID: uuid.NullUUID{UUID: next.RosterID, Valid: true},
		PickDeadline:    sql.NullTime{Time: deadline, Valid: true},
		DraftState:      stateJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("advance draft turn: %w", err)
	}
	return draftToModel(row)
}

// chargeChessClock deducts the time the outgoing picker spent on the turn
// from their budget. Budgets floor at zero; below that the minimum
// per-pick grace governs the deadline instead.
func (s *Store) chargeChessClock(ctx context.Context, q *db.Queries, draft *models.Draft, now time.Time) error {
	if draft.CurrentRosterID == nil || draft.DraftState.TurnStartedAt == nil {
		return nil
	}
	clock, err := q.GetChessClock(ctx, db.GetChessClockParams{
		DraftID:  draft.ID,
		RosterID: *draft.CurrentRosterID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("get chess clock: %w", err)
	}
	elapsed := int(now.Sub(*draft.DraftState.TurnStartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	return s.SetChessClock(ctx, q, draft.ID, *draft.CurrentRosterID, int(clock.RemainingSeconds)-elapsed)
}
