package fantasyteam

import (
	"context"

	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/google/uuid"
)

// FantasyTeamRepository defines what the app layer needs from the
// repository. Draft rosters are fantasy teams; the engine resolves
// membership through these three reads and mutates nothing here.
type FantasyTeamRepository interface {
	GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	GetFantasyTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error)
	GetFantasyTeamByLeagueAndOwner(ctx context.Context, ownerID, leagueID uuid.UUID) (*models.FantasyTeam, error)
}

// App resolves league membership for the draft engine
type App struct {
	repo FantasyTeamRepository
}

// NewApp creates a new fantasy team App
func NewApp(repo FantasyTeamRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetFantasyTeam retrieves a fantasy team by ID
func (a *App) GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	return a.repo.GetFantasyTeam(ctx, id)
}

// GetFantasyTeamsByLeague retrieves all fantasy teams in a league
func (a *App) GetFantasyTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	return a.repo.GetFantasyTeamsByLeague(ctx, leagueID)
}

// GetFantasyTeamByLeagueAndOwner retrieves the team a user owns in a league
func (a *App) GetFantasyTeamByLeagueAndOwner(ctx context.Context, ownerID, leagueID uuid.UUID) (*models.FantasyTeam, error) {
	return a.repo.GetFantasyTeamByLeagueAndOwner(ctx, ownerID, leagueID)
}
