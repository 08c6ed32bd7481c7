package fantasyteam

import (
	"context"
	"fmt"

	"github.com/draftforge/dynasty/go/internal/fantasyteam/db"
	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetFantasyTeam(ctx context.Context, id uuid.UUID) (db.FantasyTeam, error)
	GetFantasyTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.FantasyTeam, error)
	GetFantasyTeamByLeagueAndOwner(ctx context.Context, arg db.GetFantasyTeamByLeagueAndOwnerParams) (db.FantasyTeam, error)
}

// Repository implements fantasy team reads
type Repository struct {
	queries Querier
}

// NewRepository creates a new fantasy team repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetFantasyTeam retrieves a fantasy team by ID
func (r *Repository) GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	team, err := r.queries.GetFantasyTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fantasy team: %w", err)
	}
	return r.dbFantasyTeamToModel(team), nil
}

// GetFantasyTeamsByLeague retrieves all fantasy teams in a league
func (r *Repository) GetFantasyTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	teams, err := r.queries.GetFantasyTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fantasy teams by league: %w", err)
	}

	result := make([]models.FantasyTeam, len(teams))
	for i, team := range teams {
		result[i] = *r.dbFantasyTeamToModel(team)
	}
	return result, nil
}

// GetFantasyTeamByLeagueAndOwner retrieves the team a user owns in a league
func (r *Repository) GetFantasyTeamByLeagueAndOwner(ctx context.Context, ownerID, leagueID uuid.UUID) (*models.FantasyTeam, error) {
	team, err := r.queries.GetFantasyTeamByLeagueAndOwner(ctx, db.GetFantasyTeamByLeagueAndOwnerParams{
		OwnerID:  ownerID,
		LeagueID: leagueID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get fantasy team by league and owner: %w", err)
	}
	return r.dbFantasyTeamToModel(team), nil
}

// dbFantasyTeamToModel converts a database fantasy team to domain model
func (r *Repository) dbFantasyTeamToModel(dbTeam db.FantasyTeam) *models.FantasyTeam {
	return &models.FantasyTeam{
		ID:        dbTeam.ID,
		LeagueID:  dbTeam.LeagueID,
		OwnerID:   dbTeam.OwnerID,
		Name:      dbTeam.Name,
		LogoURL:   dbTeam.LogoUrl.String,
		CreatedAt: dbTeam.CreatedAt,
	}
}
