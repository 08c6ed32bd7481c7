package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Info().Msg("Starting Dynasty application")

	// Listen for shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn().
			Err(err).
			Msg("Could not load .env file; proceeding with existing environment")
	}

	// Load application config
	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatal().
			Err(err).
			Msg("Failed to load config")
	}

	// Setup database connection
	database, err := setupDatabase()
	if err != nil {
		log.Fatal().
			Err(err).
			Msg("Failed to setup database")
	}
	defer database.Close()

	pool, err := setupPgxPool(ctx)
	if err != nil {
		log.Fatal().
			Err(err).
			Msg("Failed to setup pgx pool")
	}
	defer pool.Close()

	// Setup services
	services := setupServices(database, pool, config)

	// Run the draft tick scheduler alongside the server. The outbox relay
	// and the websocket gateway run as separate binaries.
	go func() {
		if err := services.Scheduler.Run(ctx); err != nil {
			log.Error().
				Err(err).
				Msg("Tick scheduler terminated unexpectedly")
		}
	}()

	// Setup HTTP server
	server := setupServer(services)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().
				Err(err).
				Msg("Server terminated unexpectedly")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	if err := server.Shutdown(context.Background()); err != nil {
		log.Error().
			Err(err).
			Msg("Server shutdown failed")
	}
	log.Info().Msg("Server shutdown complete")
}
