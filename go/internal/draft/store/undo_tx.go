package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/models"
)

// UndoResult reports what UndoLastPickTx removed.
type UndoResult struct {
	Removed     models.DraftPick
	PickAssetID *uuid.UUID // set when the removed pick was an asset selection
}

// UndoLastPickTx deletes the draft's latest forward pick. Asset selections
// also drop their selection row and restore the asset's previous owner;
// matchup picks also drop their reciprocal row. The caller is responsible
// for rewinding the draft's pointers afterwards via RevertDraftTo.
func (s *Store) UndoLastPickTx(ctx context.Context, q *db.Queries, draftID uuid.UUID) (*UndoResult, error) {
	row, err := q.GetLatestForwardPick(ctx, draftID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Validation(apperrors.CodeNoPicksToUndo, "")
		}
		return nil, fmt.Errorf("find latest pick: %w", err)
	}
	pick, err := pickToModel(row)
	if err != nil {
		return nil, err
	}

	result := &UndoResult{Removed: *pick}
	if md := pick.PickMetadata; md != nil {
		if md.PickAssetID != nil {
			result.PickAssetID = md.PickAssetID
			if err := q.DeleteVetDraftPickSelection(ctx, db.DeleteVetDraftPickSelectionParams{
				DraftID:    draftID,
				PickNumber: int32(pick.PickNumber),
			}); err != nil {
				return nil, fmt.Errorf("delete vet selection: %w", err)
			}
			restoreTo := pick.RosterID
			if md.PrevOwnerRosterID != nil {
				restoreTo = *md.PrevOwnerRosterID
			}
			if err := q.TransferPickAssetOwnership(ctx, db.TransferPickAssetOwnershipParams{
				ID:                   *md.PickAssetID,
				CurrentOwnerRosterID: restoreTo,
			}); err != nil {
				return nil, fmt.Errorf("restore asset ownership: %w", err)
			}
		}
		if md.OpponentRosterID != nil {
			if err := q.DeleteDraftPickByNumber(ctx, db.DeleteDraftPickByNumberParams{
				DraftID:    draftID,
				PickNumber: int32(-pick.PickNumber),
			}); err != nil {
				return nil, fmt.Errorf("delete reciprocal pick: %w", err)
			}
		}
	}

	if err := q.DeleteDraftPickByNumber(ctx, db.DeleteDraftPickByNumberParams{
		DraftID:    draftID,
		PickNumber: int32(pick.PickNumber),
	}); err != nil {
		return nil, fmt.Errorf("delete pick: %w", err)
	}
	return result, nil
}

// RevertParams is the state the draft rewinds to after an undo.
type RevertParams struct {
	PickNumber int
	Round      int
	RosterID   uuid.UUID
	Deadline   *time.Time
	Reopen     bool // true when a completed draft returns to in_progress
}

// RevertDraftTo rewinds the draft's pointers to the undone pick. Reopening
// a completed draft clears completed_at and flips status back first.
func (s *Store) RevertDraftTo(ctx context.Context, q *db.Queries, draft *models.Draft, p RevertParams, now time.Time) (*models.Draft, error) {
	state := draft.DraftState
	if draft.Status == models.DraftStatusInProgress || p.Reopen {
		turnStarted := now
		state.TurnStartedAt = &turnStarted
	}
	stateJSON, err := marshalDraftState(state)
	if err != nil {
		return nil, err
	}

	if p.Reopen {
		if _, err := q.ResumeDraft(ctx, db.ResumeDraftParams{
			ID:           draft.ID,
			PickDeadline: nullTime(p.Deadline),
			DraftState:   stateJSON,
		}); err != nil {
			return nil, fmt.Errorf("reopen draft: %w", err)
		}
	}

	row, err := q.AdvanceDraftTurn(ctx, db.AdvanceDraftTurnParams{
		ID:              draft.ID,
		CurrentPick:     int32(p.PickNumber),
		CurrentRound:    int32(p.Round),
		CurrentRosterID: uuid.NullUUID{UUID: p.RosterID, Valid: true},
		PickDeadline:    nullTime(p.Deadline),
		DraftState:      stateJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("rewind draft turn: %w", err)
	}
	return draftToModel(row)
}
