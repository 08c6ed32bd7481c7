package leagues

import (
	"context"

	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/google/uuid"
)

// LeaguesRepository defines what the app layer needs from the repository.
// League administration (create, settings, delete) is a separate surface;
// the draft engine reads league facts and flips the status at completion
// through its own transaction.
type LeaguesRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// App answers the league questions the draft engine asks: who runs it,
// what season it is, and whether devy rules apply.
type App struct {
	repo LeaguesRepository
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return a.repo.GetLeague(ctx, id)
}
