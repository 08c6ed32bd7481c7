package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/draftforge/dynasty/go/internal/draft/orderpolicy"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/rs/zerolog/log"
)

// operationTTL bounds how long a commissioner action's stored result stays
// replayable.
const operationTTL = 24 * time.Hour

// idempotent wraps a commissioner action with the (key, user, operation)
// result cache: a replay within the TTL returns the stored result without
// re-running fn.
func (s *Service) idempotent(ctx context.Context, key *string, userID, draftID uuid.UUID, opType string, fn func() (any, error)) (json.RawMessage, error) {
	if key != nil {
		if err := s.store.PurgeExpiredOperations(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to purge expired operation records")
		}
		rec, err := s.store.GetOperation(ctx, s.store.Hint(), *key, userID, opType)
		if err != nil {
			return nil, err
		}
		if rec != nil && rec.ExpiresAtUnix > s.engine.Clock().Now().Unix() {
			return rec.Result, nil
		}
	}

	out, err := fn()
	if err != nil {
		return nil, err
	}
	result, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal operation result: %w", err)
	}

	if key != nil {
		now := s.engine.Clock().Now()
		err := s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
			return s.store.PutOperation(ctx, q, models.OperationRecord{
				IdempotencyKey: *key,
				UserID:         userID,
				OperationType:  opType,
				DraftID:        draftID,
				Result:         result,
				CreatedAtUnix:  now.Unix(),
				ExpiresAtUnix:  now.Add(operationTTL).Unix(),
			})
		})
		if err != nil {
			// The action itself committed; losing the replay cache is not
			// worth failing the call over.
			log.Warn().Err(err).Str("draft_id", draftID.String()).Str("op", opType).Msg("failed to store operation record")
		}
	}
	return result, nil
}

// StartDraft transitions not_started -> in_progress: validates the order,
// seeds the first pick pointers, arms the timer, and initialises chess
// clocks when that mode is on.
func (s *Service) StartDraft(ctx context.Context, leagueID, draftID, userID uuid.UUID, idempotencyKey *string) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var started *models.Draft
	_, err := s.idempotent(ctx, idempotencyKey, userID, draftID, "start", func() (any, error) {
		err := s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
			draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
			if err != nil {
				return err
			}
			if draft.Status != models.DraftStatusNotStarted {
				return apperrors.Conflict(apperrors.CodeDraftAlreadyStarted, string(draft.Status))
			}
			order, err := s.store.ListDraftOrder(ctx, q, draftID)
			if err != nil {
				return err
			}
			if err := validateOrderPositions(order); err != nil {
				return err
			}
			if draft.DraftType != models.DraftTypeAuction && !draft.OrderConfirmed {
				return apperrors.Validation(apperrors.CodeOrderNotConfirmed, "")
			}
			assets, err := s.store.ListPickAssets(ctx, q, draftID)
			if err != nil {
				return err
			}
			picker, _, err := orderpolicy.ActualPicker(order, draft.DraftType, 1, assets)
			if err != nil {
				return err
			}

			now := s.engine.Clock().Now()
			settings := draft.Settings
			deadlineSecs := draft.PickTimeSeconds
			if settings.TimerMode == models.TimerModeChessClock {
				for _, entry := range order {
					if err := s.store.SetChessClock(ctx, q, draftID, entry.RosterID, settings.ChessClockTotalSeconds); err != nil {
						return err
					}
				}
				deadlineSecs = settings.ChessClockTotalSeconds
				if deadlineSecs <= 0 {
					deadlineSecs = settings.ChessClockMinPickSeconds
				}
			}
			deadline := now.Add(time.Duration(deadlineSecs) * time.Second)

			row, err := q.StartDraft(ctx, db.StartDraftParams{
				ID:              draftID,
				CurrentRosterID: uuid.NullUUID{UUID: picker, Valid: true},
				PickDeadline:    sql.NullTime{Time: deadline, Valid: true},
			})
			if err != nil {
				return fmt.Errorf("start draft: %w", err)
			}

			state := draft.DraftState
			turnStarted := now
			state.TurnStartedAt = &turnStarted
			stateJSON, err := json.Marshal(state)
			if err != nil {
				return fmt.Errorf("marshal draft state: %w", err)
			}
			if err := q.SetDraftState(ctx, db.SetDraftStateParams{ID: draftID, DraftState: stateJSON}); err != nil {
				return fmt.Errorf("set draft state: %w", err)
			}

			if err := batch.Add(ctx, q, events.TypeDraftStarted, events.DraftStartedPayload{
				DraftID:     draftID.String(),
				DraftType:   string(draft.DraftType),
				StartedAt:   now,
				TotalRounds: draft.Rounds,
				TotalPicks:  draft.Rounds * len(order),
			}); err != nil {
				return err
			}
			original, err := orderpolicy.OriginalPicker(order, draft.DraftType, 1)
			if err != nil {
				return err
			}
			if err := batch.Add(ctx, q, events.TypeDraftNextPick, events.DraftNextPickPayload{
				DraftID:          draftID.String(),
				CurrentPick:      1,
				CurrentRound:     1,
				CurrentRosterID:  picker.String(),
				OriginalRosterID: original.String(),
				IsTraded:         picker != original,
				PickDeadline:     &deadline,
			}); err != nil {
				return err
			}

			updated, err := store.DraftFromRow(row)
			if err != nil {
				return err
			}
			started = updated
			return nil
		})
		return started, err
	})
	if err != nil {
		return nil, err
	}
	if started == nil {
		// Replayed from the operation cache: re-read current state.
		return s.GetDraft(ctx, draftID)
	}
	return started, nil
}

// PauseDraft freezes the timer and records the remaining seconds so resume
// can rebuild the deadline.
func (s *Service) PauseDraft(ctx context.Context, leagueID, draftID, userID uuid.UUID, idempotencyKey *string) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var paused *models.Draft
	_, err := s.idempotent(ctx, idempotencyKey, userID, draftID, "pause", func() (any, error) {
		err := s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
			draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
			if err != nil {
				return err
			}
			if draft.Status != models.DraftStatusInProgress {
				return apperrors.Validation(apperrors.CodeDraftNotInProgress, string(draft.Status))
			}

			now := s.engine.Clock().Now()
			remaining := draft.PickTimeSeconds
			if draft.PickDeadline != nil {
				remaining = int(draft.PickDeadline.Sub(now).Seconds())
				if remaining < 0 {
					remaining = 0
				}
			}

			state := draft.DraftState
			pausedAt := now
			state.PausedAt = &pausedAt
			state.PausedBy = &userID
			state.RemainingSeconds = &remaining
			stateJSON, err := json.Marshal(state)
			if err != nil {
				return fmt.Errorf("marshal draft state: %w", err)
			}

			row, err := q.PauseDraft(ctx, db.PauseDraftParams{ID: draftID, DraftState: stateJSON})
			if err != nil {
				return fmt.Errorf("pause draft: %w", err)
			}

			if err := batch.Add(ctx, q, events.TypeDraftPaused, events.DraftPausedPayload{
				DraftID:          draftID.String(),
				PausedAt:         now,
				PausedBy:         userID.String(),
				RemainingSeconds: remaining,
			}); err != nil {
				return err
			}
			updated, err := store.DraftFromRow(row)
			if err != nil {
				return err
			}
			paused = updated
			return nil
		})
		return paused, err
	})
	if err != nil {
		return nil, err
	}
	if paused == nil {
		return s.GetDraft(ctx, draftID)
	}
	return paused, nil
}

// ResumeDraft rebuilds the deadline from the recorded remaining seconds
// (or the full per-pick budget when none was recorded).
func (s *Service) ResumeDraft(ctx context.Context, leagueID, draftID, userID uuid.UUID, idempotencyKey *string) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var resumed *models.Draft
	_, err := s.idempotent(ctx, idempotencyKey, userID, draftID, "resume", func() (any, error) {
		err := s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
			draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
			if err != nil {
				return err
			}
			if draft.Status != models.DraftStatusPaused {
				return apperrors.Validation(apperrors.CodeDraftNotPaused, string(draft.Status))
			}

			now := s.engine.Clock().Now()
			remaining := draft.PickTimeSeconds
			if draft.DraftState.RemainingSeconds != nil {
				remaining = *draft.DraftState.RemainingSeconds
			}
			deadline := now.Add(time.Duration(remaining) * time.Second)

			state := draft.DraftState
			state.PausedAt = nil
			state.PausedBy = nil
			state.RemainingSeconds = nil
			turnStarted := now
			state.TurnStartedAt = &turnStarted
			stateJSON, err := json.Marshal(state)
			if err != nil {
				return fmt.Errorf("marshal draft state: %w", err)
			}

			row, err := q.ResumeDraft(ctx, db.ResumeDraftParams{
				ID:           draftID,
				PickDeadline: sql.NullTime{Time: deadline, Valid: true},
				DraftState:   stateJSON,
			})
			if err != nil {
				return fmt.Errorf("resume draft: %w", err)
			}

			if err := batch.Add(ctx, q, events.TypeDraftResumed, events.DraftResumedPayload{
				DraftID:      draftID.String(),
				ResumedAt:    now,
				PickDeadline: &deadline,
			}); err != nil {
				return err
			}
			updated, err := store.DraftFromRow(row)
			if err != nil {
				return err
			}
			resumed = updated
			return nil
		})
		return resumed, err
	})
	if err != nil {
		return nil, err
	}
	if resumed == nil {
		return s.GetDraft(ctx, draftID)
	}
	return resumed, nil
}

// CompleteDraft force-completes a draft, running the same completion
// collaborators a final pick would.
func (s *Service) CompleteDraft(ctx context.Context, leagueID, draftID, userID uuid.UUID, idempotencyKey *string) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var completed *models.Draft
	_, err := s.idempotent(ctx, idempotencyKey, userID, draftID, "complete", func() (any, error) {
		err := s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
			draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
			if err != nil {
				return err
			}
			if draft.Status == models.DraftStatusCompleted {
				completed = draft
				return nil
			}
			row, err := q.CompleteDraft(ctx, draftID)
			if err != nil {
				return fmt.Errorf("complete draft: %w", err)
			}
			updated, err := store.DraftFromRow(row)
			if err != nil {
				return err
			}
			if err := s.engine.StageCompletion(ctx, tx, q, updated, batch); err != nil {
				return err
			}
			completed = updated
			return nil
		})
		return completed, err
	})
	if err != nil {
		return nil, err
	}
	if completed == nil {
		return s.GetDraft(ctx, draftID)
	}
	return completed, nil
}

// UndoLastPick removes the draft's latest pick and rewinds the pointers,
// traded-pick aware. A completed draft reopens to in_progress.
func (s *Service) UndoLastPick(ctx context.Context, leagueID, draftID, userID uuid.UUID, idempotencyKey *string) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var reverted *models.Draft
	_, err := s.idempotent(ctx, idempotencyKey, userID, draftID, "undo", func() (any, error) {
		err := s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
			draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
			if err != nil {
				return err
			}
			res, err := s.store.UndoLastPickTx(ctx, q, draftID)
			if err != nil {
				return err
			}

			// Re-read order and assets after the ownership revert so the
			// recomputed picker reflects restored trades.
			order, err := s.store.ListDraftOrder(ctx, q, draftID)
			if err != nil {
				return err
			}
			assets, err := s.store.ListPickAssets(ctx, q, draftID)
			if err != nil {
				return err
			}

			pickNumber := res.Removed.PickNumber
			round, _ := orderpolicy.RoundAndSlot(len(order), pickNumber)
			picker, _, err := orderpolicy.ActualPicker(order, draft.DraftType, pickNumber, assets)
			if err != nil {
				return err
			}

			now := s.engine.Clock().Now()
			reopen := draft.Status == models.DraftStatusCompleted
			resuming := reopen || draft.Status == models.DraftStatusInProgress
			var deadline *time.Time
			if resuming {
				d := now.Add(time.Duration(draft.PickTimeSeconds) * time.Second)
				deadline = &d
			}

			updated, err := s.store.RevertDraftTo(ctx, q, draft, store.RevertParams{
				PickNumber: pickNumber,
				Round:      round,
				RosterID:   picker,
				Deadline:   deadline,
				Reopen:     reopen,
			}, now)
			if err != nil {
				return err
			}

			payload := events.DraftPickUndonePayload{
				DraftID:         draftID.String(),
				PickNumber:      pickNumber,
				RosterID:        res.Removed.RosterID.String(),
				CurrentPick:     updated.CurrentPick,
				CurrentRound:    updated.CurrentRound,
				CurrentRosterID: picker.String(),
				PickDeadline:    deadline,
				UndoneAt:        now,
			}
			if res.Removed.PlayerID != nil {
				payload.PlayerID = res.Removed.PlayerID.String()
			}
			if res.PickAssetID != nil {
				payload.PickAssetID = res.PickAssetID.String()
			}
			if err := batch.Add(ctx, q, events.TypeDraftPickUndone, payload); err != nil {
				return err
			}
			reverted = updated
			return nil
		})
		return reverted, err
	})
	if err != nil {
		return nil, err
	}
	if reverted == nil {
		return s.GetDraft(ctx, draftID)
	}
	return reverted, nil
}

// DeleteDraft removes a draft that is not running.
func (s *Service) DeleteDraft(ctx context.Context, leagueID, draftID, userID uuid.UUID, idempotencyKey *string) error {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return err
	}
	_, err := s.idempotent(ctx, idempotencyKey, userID, draftID, "delete", func() (any, error) {
		err := s.engine.Locker().WithDraftLock(ctx, draftID, func(ctx context.Context) error {
			return s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
				draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
				if err != nil {
					return err
				}
				if draft.Status == models.DraftStatusInProgress {
					return apperrors.Validation(apperrors.CodeDraftNotInProgress, "cannot delete a running draft")
				}
				return s.store.DeleteDraftCascade(ctx, q, draftID)
			})
		})
		return map[string]string{"deleted": draftID.String()}, err
	})
	return err
}

func validateOrderPositions(order []models.DraftOrderEntry) error {
	if len(order) == 0 {
		return apperrors.Validation(apperrors.CodeOrderInvalid, "draft has no rosters")
	}
	for i, entry := range order {
		if entry.DraftPosition != i+1 {
			return apperrors.Validation(apperrors.CodeOrderInvalid,
				fmt.Sprintf("position %d at index %d", entry.DraftPosition, i))
		}
	}
	return nil
}
