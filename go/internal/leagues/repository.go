package leagues

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/draftforge/dynasty/go/internal/leagues/db"
	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
}

// Repository implements league reads
type Repository struct {
	queries Querier
}

// NewRepository creates a new leagues repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return r.dbLeagueToModel(league), nil
}

// dbLeagueToModel converts a database league to domain model
func (r *Repository) dbLeagueToModel(dbLeague db.League) *models.League {
	var settings interface{}
	if len(dbLeague.LeagueSettings) > 0 {
		if err := json.Unmarshal(dbLeague.LeagueSettings, &settings); err != nil {
			// If unmarshal fails, store as raw JSON string
			settings = string(dbLeague.LeagueSettings)
		}
	}

	return &models.League{
		ID:             dbLeague.ID,
		Name:           dbLeague.Name,
		SportID:        dbLeague.SportID,
		LeagueType:     models.LeagueType(dbLeague.LeagueType),
		CommissionerID: dbLeague.CommissionerID,
		LeagueSettings: settings,
		Status:         models.LeagueStatus(dbLeague.Status),
		Season:         dbLeague.Season,
		CreatedAt:      dbLeague.CreatedAt,
		UpdatedAt:      dbLeague.UpdatedAt,
	}
}
