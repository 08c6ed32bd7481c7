package users

import (
	"context"

	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/google/uuid"
)

// UsersRepository defines what the app layer needs from the repository.
// The draft engine only ever resolves accounts; account CRUD lives with
// the identity system, not here.
type UsersRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// App handles user lookups for the draft engine
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}
