// Package service is the public orchestrator for draft operations: client
// picks, commissioner lifecycle actions, order management, and queue
// management. Every mutation acquires the per-draft lock, re-reads state on
// the transaction, and publishes its events only after commit.
package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/engine"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/models"
)

// LeagueReader is what the service needs from the leagues application.
type LeagueReader interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// FantasyTeamReader resolves league membership. Draft rosters are fantasy
// teams; the terms are interchangeable at this boundary.
type FantasyTeamReader interface {
	GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	GetFantasyTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error)
	GetFantasyTeamByLeagueAndOwner(ctx context.Context, ownerID, leagueID uuid.UUID) (*models.FantasyTeam, error)
}

type Service struct {
	engine  *engine.Engine
	store   *store.Store
	leagues LeagueReader
	teams   FantasyTeamReader
}

func NewService(eng *engine.Engine, leagues LeagueReader, teams FantasyTeamReader) *Service {
	return &Service{
		engine:  eng,
		store:   eng.Store(),
		leagues: leagues,
		teams:   teams,
	}
}

// Tick delegates to the engine; the scheduler calls this.
func (s *Service) Tick(ctx context.Context, draftID uuid.UUID) (engine.TickResult, error) {
	return s.engine.Tick(ctx, draftID)
}

// rosterForUser resolves the caller's roster in the league, failing with
// NOT_IN_LEAGUE when the user has no team there.
func (s *Service) rosterForUser(ctx context.Context, leagueID, userID uuid.UUID) (uuid.UUID, error) {
	team, err := s.teams.GetFantasyTeamByLeagueAndOwner(ctx, userID, leagueID)
	if err != nil {
		return uuid.Nil, apperrors.Forbidden(apperrors.CodeNotInLeague, userID.String())
	}
	return team.ID, nil
}

// requireCommissioner fails with NOT_COMMISSIONER unless userID runs the
// league.
func (s *Service) requireCommissioner(ctx context.Context, leagueID, userID uuid.UUID) error {
	league, err := s.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		return err
	}
	if league.CommissionerID != userID {
		return apperrors.Forbidden(apperrors.CodeNotCommissioner, userID.String())
	}
	return nil
}

// withDraftTx is the lock-then-transact envelope every mutation uses: the
// DRAFT advisory lock, then a transaction, then fn; the batch flushes to
// the bus only after a successful commit.
func (s *Service) withDraftTx(ctx context.Context, draftID uuid.UUID, fn func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error) error {
	batch := eventbus.NewBatch(draftID)
	err := s.engine.Locker().WithDraftLock(ctx, draftID, func(ctx context.Context) error {
		return s.store.InTx(ctx, func(tx *sql.Tx, q *db.Queries) error {
			return fn(tx, q, batch)
		})
	})
	if err != nil {
		return err
	}
	batch.Flush(ctx, s.engine.Bus())
	return nil
}

// Pick applies a client player pick.
func (s *Service) Pick(ctx context.Context, leagueID, draftID, userID, playerID uuid.UUID, idempotencyKey *string) (*models.DraftPick, error) {
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return nil, err
	}

	var picked *models.DraftPick
	err = s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		res, err := s.engine.ApplyPick(ctx, tx, q, store.PickParams{
			DraftID:        draftID,
			RosterID:       rosterID,
			PlayerID:       &playerID,
			IdempotencyKey: idempotencyKey,
		}, batch)
		if err != nil {
			return err
		}
		picked = &res.Pick
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// PickAsset applies a client pick-asset selection in a veteran draft.
func (s *Service) PickAsset(ctx context.Context, leagueID, draftID, userID, draftPickAssetID uuid.UUID, idempotencyKey *string) (*models.DraftPick, error) {
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return nil, err
	}

	var picked *models.DraftPick
	err = s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		res, err := s.engine.ApplyAssetSelection(ctx, tx, q, store.AssetSelectionParams{
			DraftID:        draftID,
			RosterID:       rosterID,
			PickAssetID:    draftPickAssetID,
			IdempotencyKey: idempotencyKey,
		}, batch)
		if err != nil {
			return err
		}
		picked = &res.Pick
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// PickMatchup applies a client matchup pick.
func (s *Service) PickMatchup(ctx context.Context, leagueID, draftID, userID uuid.UUID, week int, opponentRosterID uuid.UUID, idempotencyKey *string) (*models.DraftPick, error) {
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return nil, err
	}

	var picked *models.DraftPick
	err = s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		res, err := s.engine.ApplyMatchupPick(ctx, tx, q, store.MatchupPickParams{
			DraftID:          draftID,
			RosterID:         rosterID,
			Week:             week,
			OpponentRosterID: opponentRosterID,
			IdempotencyKey:   idempotencyKey,
		}, batch)
		if err != nil {
			return err
		}
		picked = &res.Pick
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// ToggleAutodraft flips the caller's own autodraft flag.
func (s *Service) ToggleAutodraft(ctx context.Context, leagueID, draftID, userID uuid.UUID, enabled bool) error {
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return err
	}

	return s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		if _, err := s.store.GetDraftForUpdate(ctx, q, draftID); err != nil {
			return err
		}
		if err := s.store.SetAutodraftEnabled(ctx, q, draftID, rosterID, enabled); err != nil {
			return err
		}
		return batch.Add(ctx, q, events.TypeAutodraftToggled, events.AutodraftToggledPayload{
			DraftID:  draftID.String(),
			RosterID: rosterID.String(),
			Enabled:  enabled,
			Forced:   false,
		})
	})
}

// GetDraft reads current draft state (unlocked, for display).
func (s *Service) GetDraft(ctx context.Context, draftID uuid.UUID) (*models.Draft, error) {
	return s.store.GetDraft(ctx, s.store.Hint(), draftID)
}

// ListPicks reads the pick history (unlocked, for display). Reciprocal
// matchup rows are included; callers rendering turn order should filter to
// PickNumber > 0.
func (s *Service) ListPicks(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error) {
	return s.store.ListDraftPicks(ctx, s.store.Hint(), draftID)
}
