package main

import (
	"database/sql"
	"os"

	"github.com/draftforge/dynasty/go/internal/draft/engine"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/lock"
	"github.com/draftforge/dynasty/go/internal/draft/scheduler"
	draftservice "github.com/draftforge/dynasty/go/internal/draft/service"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/fantasyteam"
	fantasyteamdb "github.com/draftforge/dynasty/go/internal/fantasyteam/db"
	"github.com/draftforge/dynasty/go/internal/leagues"
	leaguedb "github.com/draftforge/dynasty/go/internal/leagues/db"
	"github.com/draftforge/dynasty/go/internal/users"
	usersdb "github.com/draftforge/dynasty/go/internal/users/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Users       *users.App
	League      *leagues.App
	FantasyTeam *fantasyteam.App
	Draft       *draftservice.Service
	Scheduler   *scheduler.Scheduler
}

func setupServices(database *sql.DB, pool *pgxpool.Pool, cfg *Config) *Services {
	// Wire up dependency injection chain
	// Database layer -> Repository layer -> App layer

	// Read-side collaborators: the draft engine resolves membership,
	// commissioners, seasons, and account liveness through these.
	userApp := users.NewApp(users.NewRepository(usersdb.New(database)))
	leagueApp := leagues.NewApp(leagues.NewRepository(leaguedb.New(database)))
	fantasyTeamApp := fantasyteam.NewApp(fantasyteam.NewRepository(fantasyteamdb.New(database)))

	// Draft engine: store, per-draft lock runner, post-commit event bus
	draftStore := store.New(database)
	locker := lock.NewRunner(pool)
	bus := setupEventBus()

	directory := &draftservice.Directory{
		Leagues: leagueApp,
		Teams:   fantasyTeamApp,
		Users:   userApp,
	}
	hooks := &draftservice.CompletionHooks{
		Leagues:   leagueApp,
		Scheduler: draftservice.NoopScheduleGenerator{},
	}

	clock := clockwork.NewRealClock()
	draftEngine := engine.New(draftStore, locker, bus, hooks, directory, clock)
	draftService := draftservice.NewService(draftEngine, leagueApp, fantasyTeamApp)

	tickScheduler := scheduler.New(draftStore, draftService, cfg.SchedulerConfig(), clock)

	return &Services{
		Users:       userApp,
		League:      leagueApp,
		FantasyTeam: fantasyTeamApp,
		Draft:       draftService,
		Scheduler:   tickScheduler,
	}
}

// setupEventBus connects the JetStream fast path when a broker is
// configured; without one, events still reach subscribers through the
// outbox relay.
func setupEventBus() eventbus.Publisher {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		log.Warn().Msg("NATS_URL not set; draft events flow through the outbox relay only")
		return eventbus.LogPublisher{}
	}
	cfg := eventbus.DefaultNATSConfig()
	cfg.URL = natsURL
	bus, err := eventbus.NewNATSPublisher(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect event bus; falling back to outbox relay")
		return eventbus.LogPublisher{}
	}
	return bus
}
