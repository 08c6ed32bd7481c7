package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	draftdb "github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/rs/zerolog/log"
)

type RealtimeConfig struct {
	DatabaseURL      string        // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string        // Channel name to LISTEN on
	FallbackInterval time.Duration // How often to poll for missed events
	MaxRetries       int
	RetryDelay       time.Duration
	PingInterval     time.Duration
	BatchSize        int32 // Max events to fetch per batch
}

func DefaultRealtimeConfig() RealtimeConfig {
	return RealtimeConfig{
		DatabaseURL:      "",
		NotifyChannel:    "draft_outbox_events",
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// RealtimeWorker relays outbox rows to the publisher with low latency: a
// LISTEN/NOTIFY subscription delivers fresh rows immediately, and a
// fallback poll sweeps anything a dropped notification missed.
type RealtimeWorker struct {
	db        *sql.DB
	queries   *draftdb.Queries
	listener  *pq.Listener
	publisher EventPublisher
	cfg       RealtimeConfig

	mu              sync.Mutex
	running         bool
	eventsProcessed uint64
	lastEventTime   time.Time
	stopCh          chan struct{}
	wg              sync.WaitGroup
}

func NewRealtimeWorker(dbConn *sql.DB, publisher EventPublisher, cfg RealtimeConfig, logger *slog.Logger) (*RealtimeWorker, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	logger.Info("listening for notifications", slog.String("channel", cfg.NotifyChannel))

	return &RealtimeWorker{
		db:        dbConn,
		queries:   draftdb.New(dbConn),
		listener:  l,
		publisher: publisher,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
	}, nil
}

// Start launches the relay loop.
func (w *RealtimeWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("realtime worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
	return nil
}

func (w *RealtimeWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	w.wg.Wait()
	return w.listener.Close()
}

// Stats reports how many events this worker has relayed and when the last
// one went out.
func (w *RealtimeWorker) Stats() (processed uint64, lastEvent time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.eventsProcessed, w.lastEventTime
}

func (w *RealtimeWorker) run(ctx context.Context) {
	log.Info().
		Str("channel", w.cfg.NotifyChannel).
		Dur("ping_interval", w.cfg.PingInterval).
		Dur("fallback_interval", w.cfg.FallbackInterval).
		Msg("realtime outbox worker started")

	pingTicker := time.NewTicker(w.cfg.PingInterval)
	fallbackTicker := time.NewTicker(w.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	// Sweep once at startup to drain anything left over from downtime.
	if err := w.processUnsent(ctx); err != nil {
		log.Error().Err(err).Msg("failed initial unsent sweep")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("realtime worker shutting down")
			return
		case <-w.stopCh:
			return
		case note := <-w.listener.Notify:
			if note == nil {
				// nil notification means the connection was lost; the pq
				// listener reconnects on its own and the fallback sweep
				// covers the gap.
				continue
			}
			if err := w.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.C:
			if err := w.processUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.C:
			if err := w.listener.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

// handleNotification relays one freshly inserted row. The notification
// payload is the outbox row's ID.
func (w *RealtimeWorker) handleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	row, err := w.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			// Already marked sent by the fallback sweep or another worker.
			return nil
		}
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}

	event := OutboxEvent{
		ID:        row.ID,
		DraftID:   row.DraftID,
		EventType: row.EventType,
		Payload:   row.Payload,
	}
	if err := w.publishWithRetry(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := w.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	w.recordProcessed()
	return nil
}

// processUnsent sweeps rows the notification path missed.
func (w *RealtimeWorker) processUnsent(ctx context.Context) error {
	unsent, err := w.queries.FetchUnsentOutbox(ctx, w.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	for _, row := range unsent {
		event := OutboxEvent{
			ID:        row.ID,
			DraftID:   row.DraftID,
			EventType: row.EventType,
			Payload:   row.Payload,
		}
		if err := w.publishWithRetry(ctx, event); err != nil {
			log.Error().Err(err).Str("event_id", row.ID.String()).Msg("failed to publish event")
			continue
		}
		if err := w.queries.MarkOutboxSent(ctx, row.ID); err != nil {
			log.Error().Err(err).Str("event_id", row.ID.String()).Msg("failed to mark outbox event as sent")
			continue
		}
		w.recordProcessed()
	}
	return nil
}

func (w *RealtimeWorker) publishWithRetry(ctx context.Context, event OutboxEvent) error {
	var lastErr error
	for attempt := 0; attempt <= w.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := w.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := w.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}
		return nil
	}
	return fmt.Errorf("publish failed after %d attempts: %w", w.cfg.MaxRetries+1, lastErr)
}

func (w *RealtimeWorker) recordProcessed() {
	w.mu.Lock()
	w.eventsProcessed++
	w.lastEventTime = time.Now()
	w.mu.Unlock()
}
