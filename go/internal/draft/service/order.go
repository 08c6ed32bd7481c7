package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/models"
)

// CreateDraft creates a not_started draft for a league.
func (s *Service) CreateDraft(ctx context.Context, leagueID, userID uuid.UUID, draftType models.DraftType, settings models.DraftSettings, scheduledAt *time.Time) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}
	if settings.Rounds <= 0 {
		return nil, apperrors.Validation(apperrors.CodeOrderInvalid, "rounds must be positive")
	}
	if settings.PickTimeSeconds <= 0 {
		return nil, apperrors.Validation(apperrors.CodeOrderInvalid, "pick time must be positive")
	}

	var created *models.Draft
	err := s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
		draft, err := s.store.CreateDraft(ctx, q, store.CreateDraftParams{
			LeagueID:    leagueID,
			DraftType:   draftType,
			Settings:    settings,
			ScheduledAt: scheduledAt,
		})
		if err != nil {
			return err
		}
		created = draft

		batch := eventbus.NewBatch(draft.ID)
		if err := batch.Add(ctx, q, events.TypeDraftCreated, events.DraftCreatedPayload{
			DraftID:   draft.ID.String(),
			LeagueID:  leagueID.String(),
			DraftType: string(draftType),
			CreatedAt: draft.CreatedAt,
		}); err != nil {
			return err
		}
		// No fast-path flush here: creation events are low-urgency and the
		// outbox relay delivers them.
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateSettings replaces the draft's settings. The timer mode is locked
// once the draft has left not_started.
func (s *Service) UpdateSettings(ctx context.Context, leagueID, draftID, userID uuid.UUID, settings models.DraftSettings) (*models.Draft, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var updated *models.Draft
	err := s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
		if err != nil {
			return err
		}
		settings = settings.WithDefaults()
		if draft.Status != models.DraftStatusNotStarted && settings.TimerMode != draft.Settings.TimerMode {
			return apperrors.Conflict(apperrors.CodeTimerModeLockedAfterStart, string(draft.Settings.TimerMode))
		}

		settingsJSON, err := json.Marshal(settings)
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		row, err := q.UpdateDraftSettings(ctx, db.UpdateDraftSettingsParams{
			ID:              draftID,
			Settings:        settingsJSON,
			PickTimeSeconds: int32(settings.PickTimeSeconds),
			Rounds:          int32(settings.Rounds),
		})
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}

		var blob map[string]any
		if err := json.Unmarshal(settingsJSON, &blob); err != nil {
			return fmt.Errorf("reshape settings payload: %w", err)
		}
		if err := batch.Add(ctx, q, events.TypeDraftSettingsUpdated, events.DraftSettingsUpdatedPayload{
			DraftID:   draftID.String(),
			Settings:  blob,
			UpdatedAt: s.engine.Clock().Now(),
		}); err != nil {
			return err
		}
		updated, err = store.DraftFromRow(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetOrder writes an explicit draft order: rosterIDs in position order.
func (s *Service) SetOrder(ctx context.Context, leagueID, draftID, userID uuid.UUID, rosterIDs []uuid.UUID) error {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return err
	}
	entries, err := s.orderEntriesFor(ctx, leagueID, rosterIDs)
	if err != nil {
		return err
	}
	return s.writeOrder(ctx, draftID, entries)
}

// RandomizeOrder shuffles the league's rosters into a fresh order.
func (s *Service) RandomizeOrder(ctx context.Context, leagueID, draftID, userID uuid.UUID) ([]models.DraftOrderEntry, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}
	teams, err := s.teams.GetFantasyTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, apperrors.Validation(apperrors.CodeOrderInvalid, "league has no rosters")
	}
	ids := make([]uuid.UUID, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	entries := make([]models.DraftOrderEntry, len(ids))
	for i, id := range ids {
		entries[i] = models.DraftOrderEntry{RosterID: id, DraftPosition: i + 1}
	}
	if err := s.writeOrder(ctx, draftID, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ConfirmOrder locks the order in and finalises the attached pick assets'
// original positions, which the actual-picker lookup keys on.
func (s *Service) ConfirmOrder(ctx context.Context, leagueID, draftID, userID uuid.UUID) error {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return err
	}
	return s.engine.Locker().WithDraftLock(ctx, draftID, func(ctx context.Context) error {
		return s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
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

			positionOf := make(map[uuid.UUID]int, len(order))
			for _, entry := range order {
				positionOf[entry.RosterID] = entry.DraftPosition
			}
			assets, err := s.store.ListPickAssets(ctx, q, draftID)
			if err != nil {
				return err
			}
			for _, asset := range assets {
				pos, ok := positionOf[asset.OriginalRosterID]
				if !ok {
					continue
				}
				if err := q.SetPickAssetOriginalPosition(ctx, db.SetPickAssetOriginalPositionParams{
					ID:                   asset.ID,
					OriginalPickPosition: int32(pos),
				}); err != nil {
					return fmt.Errorf("finalise asset position: %w", err)
				}
			}
			return q.ConfirmDraftOrder(ctx, draftID)
		})
	})
}

// SetOrderFromPickOwnership derives the order for a rookie draft whose
// slots were pre-traded: each round-1 asset's original position places its
// original roster; ownership then steers individual picks at draft time.
func (s *Service) SetOrderFromPickOwnership(ctx context.Context, leagueID, draftID, userID uuid.UUID) ([]models.DraftOrderEntry, error) {
	if err := s.requireCommissioner(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	var entries []models.DraftOrderEntry
	err := s.engine.Locker().WithDraftLock(ctx, draftID, func(ctx context.Context) error {
		return s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
			if _, err := s.store.GetDraftForUpdate(ctx, q, draftID); err != nil {
				return err
			}
			assets, err := s.store.ListPickAssets(ctx, q, draftID)
			if err != nil {
				return err
			}
			byPosition := make(map[int]uuid.UUID)
			for _, asset := range assets {
				if asset.Round != 1 || asset.OriginalPickPosition == nil {
					continue
				}
				byPosition[*asset.OriginalPickPosition] = asset.OriginalRosterID
			}
			if len(byPosition) == 0 {
				return apperrors.Validation(apperrors.CodeOrderInvalid, "no positioned round-1 pick assets")
			}
			entries = make([]models.DraftOrderEntry, 0, len(byPosition))
			for pos := 1; pos <= len(byPosition); pos++ {
				rosterID, ok := byPosition[pos]
				if !ok {
					return apperrors.Validation(apperrors.CodeOrderInvalid,
						fmt.Sprintf("round-1 assets missing position %d", pos))
				}
				entries = append(entries, models.DraftOrderEntry{RosterID: rosterID, DraftPosition: pos})
			}
			return s.store.SetDraftOrder(ctx, q, draftID, entries)
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// orderEntriesFor validates that every roster belongs to the league and
// appears exactly once.
func (s *Service) orderEntriesFor(ctx context.Context, leagueID uuid.UUID, rosterIDs []uuid.UUID) ([]models.DraftOrderEntry, error) {
	if len(rosterIDs) == 0 {
		return nil, apperrors.Validation(apperrors.CodeOrderInvalid, "empty order")
	}
	teams, err := s.teams.GetFantasyTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	inLeague := make(map[uuid.UUID]bool, len(teams))
	for _, t := range teams {
		inLeague[t.ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(rosterIDs))
	entries := make([]models.DraftOrderEntry, len(rosterIDs))
	for i, id := range rosterIDs {
		if !inLeague[id] {
			return nil, apperrors.Validation(apperrors.CodeNotInLeague, id.String())
		}
		if seen[id] {
			return nil, apperrors.Validation(apperrors.CodeOrderInvalid, fmt.Sprintf("roster %s listed twice", id))
		}
		seen[id] = true
		entries[i] = models.DraftOrderEntry{RosterID: id, DraftPosition: i + 1}
	}
	return entries, nil
}

func (s *Service) writeOrder(ctx context.Context, draftID uuid.UUID, entries []models.DraftOrderEntry) error {
	return s.engine.Locker().WithDraftLock(ctx, draftID, func(ctx context.Context) error {
		return s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
			draft, err := s.store.GetDraftForUpdate(ctx, q, draftID)
			if err != nil {
				return err
			}
			if draft.Status != models.DraftStatusNotStarted {
				return apperrors.Conflict(apperrors.CodeDraftAlreadyStarted, string(draft.Status))
			}
			return s.store.SetDraftOrder(ctx, q, draftID, entries)
		})
	})
}
