package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/models"
	leaguesdb "github.com/draftforge/dynasty/go/internal/leagues/db"
	rosterdb "github.com/draftforge/dynasty/go/internal/roster/db"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"
)

// ScheduleGenerator is the downstream collaborator that builds the league's
// weekly schedule once the draft closes. It runs inside the completion
// transaction so a failure rolls the completion back with it.
type ScheduleGenerator interface {
	GenerateSchedule(ctx context.Context, leagueID uuid.UUID, season string) error
}

// NoopScheduleGenerator stands in where schedule generation is handled by
// another system.
type NoopScheduleGenerator struct{}

func (NoopScheduleGenerator) GenerateSchedule(ctx context.Context, leagueID uuid.UUID, season string) error {
	log.Info().Str("league_id", leagueID.String()).Str("season", season).Msg("schedule generation delegated")
	return nil
}

// UserReader is what the directory needs from the users application.
type UserReader interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Directory implements engine.Directory over the league/team/user
// applications.
type Directory struct {
	Leagues LeagueReader
	Teams   FantasyTeamReader
	Users   UserReader
}

func (d *Directory) RosterHasUser(ctx context.Context, rosterID uuid.UUID) (bool, error) {
	team, err := d.Teams.GetFantasyTeam(ctx, rosterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if _, err := d.Users.GetUser(ctx, team.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *Directory) IsDevyLeague(ctx context.Context, leagueID uuid.UUID) (bool, error) {
	league, err := d.Leagues.GetLeague(ctx, leagueID)
	if err != nil {
		return false, err
	}
	settings, ok := league.LeagueSettings.(map[string]any)
	if !ok {
		return false, nil
	}
	devy, _ := settings["devy_enabled"].(bool)
	return devy, nil
}

func (d *Directory) LeagueSeason(ctx context.Context, leagueID uuid.UUID) (string, error) {
	league, err := d.Leagues.GetLeague(ctx, leagueID)
	if err != nil {
		return "", err
	}
	return league.Season, nil
}

// CompletionHooks implements engine.CompletionHooks: populate rosters from
// the picks, activate the league, and kick off schedule generation, all on
// the completing transaction.
type CompletionHooks struct {
	Leagues   LeagueReader
	Scheduler ScheduleGenerator
}

func (h *CompletionHooks) OnDraftCompleted(ctx context.Context, tx *sql.Tx, draft *models.Draft, picks []models.DraftPick) error {
	league, err := h.Leagues.GetLeague(ctx, draft.LeagueID)
	if err != nil {
		return err
	}

	rosters := rosterdb.New(tx)
	for _, pick := range picks {
		if pick.PickNumber <= 0 || pick.PlayerID == nil {
			continue
		}
		if _, err := rosters.CreateRoster(ctx, rosterdb.CreateRosterParams{
			FantasyTeamID:   pick.RosterID,
			PlayerID:        *pick.PlayerID,
			Position:        rosterdb.RosterPositionEnumBench,
			AcquisitionType: rosterdb.AcquisitionTypeEnumDraft,
			KeeperData:      pqtype.NullRawMessage{},
			Season:          league.Season,
			Week:            0,
		}); err != nil {
			return fmt.Errorf("populate roster for pick %d: %w", pick.PickNumber, err)
		}
	}

	if _, err := leaguesdb.New(tx).UpdateLeagueStatus(ctx, leaguesdb.UpdateLeagueStatusParams{
		ID:     draft.LeagueID,
		Status: leaguesdb.LeagueStatusActive,
	}); err != nil {
		return fmt.Errorf("activate league: %w", err)
	}

	if err := h.Scheduler.GenerateSchedule(ctx, draft.LeagueID, league.Season); err != nil {
		return fmt.Errorf("generate schedule: %w", err)
	}
	return nil
}
