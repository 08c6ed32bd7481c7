// Package scheduler runs the periodic sweep that keeps in-progress drafts
// moving: every interval it enumerates drafts whose deadline expired, whose
// current picker has autodraft on, or whose roster has no user, and hands
// each to the engine's tick on a worker pool. The per-draft lock inside
// the tick serialises it against client picks; the scheduler itself only
// ever works from hints.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/engine"
	"github.com/rs/zerolog/log"
)

type Config struct {
	PollInterval time.Duration
	BatchSize    int32
	NumWorkers   int
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 3 * time.Second,
		BatchSize:    100,
		NumWorkers:   10,
	}
}

// Ticker is the engine surface the scheduler drives.
type Ticker interface {
	Tick(ctx context.Context, draftID uuid.UUID) (engine.TickResult, error)
}

// CandidateSource enumerates drafts that look due. The listing is a hint;
// the tick re-checks everything under the draft lock.
type CandidateSource interface {
	ListDueDraftIDs(ctx context.Context, limit int32) ([]uuid.UUID, error)
}

type Scheduler struct {
	source     CandidateSource
	ticker     Ticker
	cfg        Config
	clock      clockwork.Clock
	instanceID string

	wakeCh chan struct{}
	workCh chan uuid.UUID

	// inFlight prevents the same draft being queued twice while a worker
	// still owns it.
	inFlight   map[uuid.UUID]bool
	inFlightMu sync.Mutex
}

func New(source CandidateSource, ticker Ticker, cfg Config, clock clockwork.Clock) *Scheduler {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = DefaultConfig().NumWorkers
	}
	return &Scheduler{
		source:     source,
		ticker:     ticker,
		cfg:        cfg,
		clock:      clock,
		instanceID: uuid.New().String()[:8],
		wakeCh:     make(chan struct{}, 1),
		workCh:     make(chan uuid.UUID, cfg.NumWorkers*2),
		inFlight:   make(map[uuid.UUID]bool),
	}
}

// Wake nudges the scheduler to sweep immediately instead of waiting out the
// interval, e.g. after a pick armed a much sooner deadline.
func (s *Scheduler) Wake() {
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}

// Run sweeps until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	log.Info().
		Str("instance", s.instanceID).
		Int("workers", s.cfg.NumWorkers).
		Dur("poll_interval", s.cfg.PollInterval).
		Msg("tick scheduler started")

	var wg sync.WaitGroup
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer func() {
		cancelWorkers()
		close(s.workCh)
		wg.Wait()
		log.Info().Str("instance", s.instanceID).Msg("tick scheduler stopped")
	}()

	for i := 0; i < s.cfg.NumWorkers; i++ {
		wg.Add(1)
		go s.worker(workerCtx, &wg, i)
	}

	timer := s.clock.NewTimer(s.cfg.PollInterval)
	defer timer.Stop()

	for {
		s.sweep(ctx)

		timer.Reset(s.cfg.PollInterval)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.Chan():
		case <-s.wakeCh:
		}
	}
}

// sweep queues one batch of due drafts.
func (s *Scheduler) sweep(ctx context.Context) {
	due, err := s.source.ListDueDraftIDs(ctx, s.cfg.BatchSize)
	if err != nil {
		log.Error().Err(err).Str("instance", s.instanceID).Msg("failed to enumerate due drafts")
		return
	}
	if len(due) == 0 {
		return
	}
	log.Debug().
		Int("count_due", len(due)).
		Str("instance", s.instanceID).
		Msg("queueing due drafts")

	for _, draftID := range due {
		s.inFlightMu.Lock()
		if s.inFlight[draftID] {
			s.inFlightMu.Unlock()
			continue
		}
		s.inFlight[draftID] = true
		s.inFlightMu.Unlock()

		select {
		case <-ctx.Done():
			s.release(draftID)
			return
		case s.workCh <- draftID:
		}
	}
}

func (s *Scheduler) worker(ctx context.Context, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case draftID, ok := <-s.workCh:
			if !ok {
				return
			}
			s.handle(ctx, draftID, workerID)
			s.release(draftID)
		}
	}
}

func (s *Scheduler) handle(ctx context.Context, draftID uuid.UUID, workerID int) {
	result, err := s.ticker.Tick(ctx, draftID)
	if err != nil {
		// Retryable failures wait for the next sweep; the autopick's
		// idempotency key makes the retry safe.
		level := log.Error()
		if apperrors.Retryable(err) {
			level = log.Warn()
		}
		level.
			Err(err).
			Str("draft_id", draftID.String()).
			Str("instance", s.instanceID).
			Int("worker_id", workerID).
			Msg("tick failed")
		return
	}
	if result.Action != engine.ActionNone {
		log.Info().
			Str("draft_id", draftID.String()).
			Str("action", string(result.Action)).
			Str("reason", string(result.Reason)).
			Str("instance", s.instanceID).
			Int("worker_id", workerID).
			Msg("tick acted")
	}
}

func (s *Scheduler) release(draftID uuid.UUID) {
	s.inFlightMu.Lock()
	delete(s.inFlight, draftID)
	s.inFlightMu.Unlock()
}
