package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// HealthStatus is the relay's view of its own pipeline: the database it
// reads, the broker it writes, and the drafts depending on both.
type HealthStatus struct {
	Healthy         bool       `json:"healthy"`
	RelayRunning    bool       `json:"relay_running"`
	EventsRelayed   uint64     `json:"events_relayed"`
	LastRelayAt     *time.Time `json:"last_relay_at,omitempty"`
	PendingEvents   int        `json:"pending_events"`
	OldestUnsentAge string     `json:"oldest_unsent_age,omitempty"`
	StalledDrafts   int        `json:"stalled_drafts"`
	DatabaseOK      bool       `json:"database_ok"`
	NATSConnected   bool       `json:"nats_connected"`
	Errors          []string   `json:"errors"`
}

// HealthChecker evaluates relay health on demand.
type HealthChecker struct {
	worker   *RealtimeWorker
	db       *sql.DB
	natsConn *nats.Conn

	// pendingAlert is the backlog size that flips the check unhealthy;
	// stalledAfter is how far past its deadline an in-progress draft may
	// run before it counts as stalled (the tick scheduler should have
	// autopicked long before).
	pendingAlert int
	stalledAfter time.Duration
}

func NewHealthChecker(worker *RealtimeWorker, db *sql.DB, natsConn *nats.Conn) *HealthChecker {
	return &HealthChecker{
		worker:       worker,
		db:           db,
		natsConn:     natsConn,
		pendingAlert: 1000,
		stalledAfter: 2 * time.Minute,
	}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Healthy: true, Errors: []string{}}

	processed, lastRelay := h.worker.Stats()
	status.EventsRelayed = processed
	if !lastRelay.IsZero() {
		t := lastRelay
		status.LastRelayAt = &t
	}

	h.worker.mu.Lock()
	status.RelayRunning = h.worker.running
	h.worker.mu.Unlock()
	if !status.RelayRunning {
		status.Healthy = false
		status.Errors = append(status.Errors, "relay not running")
	}

	if err := h.db.PingContext(ctx); err != nil {
		status.Healthy = false
		status.Errors = append(status.Errors, "database ping failed: "+err.Error())
		return status
	}
	status.DatabaseOK = true

	if h.natsConn != nil {
		status.NATSConnected = h.natsConn.IsConnected()
		if !status.NATSConnected {
			status.Healthy = false
			status.Errors = append(status.Errors, "NATS disconnected")
		}
	}

	pending, oldest, err := h.outboxBacklog(ctx)
	if err != nil {
		status.Errors = append(status.Errors, "backlog query failed: "+err.Error())
	} else {
		status.PendingEvents = pending
		if oldest > 0 {
			status.OldestUnsentAge = oldest.Round(time.Second).String()
		}
		if pending > h.pendingAlert {
			status.Healthy = false
			status.Errors = append(status.Errors, "outbox backlog exceeds threshold")
		}
	}

	stalled, err := h.stalledDrafts(ctx)
	if err != nil {
		status.Errors = append(status.Errors, "stalled-draft query failed: "+err.Error())
	} else {
		status.StalledDrafts = stalled
		if stalled > 0 {
			// Overdue drafts mean the tick scheduler is down or wedged;
			// the relay itself may be fine, but the system is not.
			status.Healthy = false
			status.Errors = append(status.Errors, "in-progress drafts overdue past autopick window")
		}
	}

	return status
}

// outboxBacklog counts unsent rows and the age of the oldest one.
func (h *HealthChecker) outboxBacklog(ctx context.Context) (int, time.Duration, error) {
	var count int
	var oldest sql.NullTime
	row := h.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(created_at) FROM draft_outbox WHERE sent_at IS NULL`)
	if err := row.Scan(&count, &oldest); err != nil {
		return 0, 0, err
	}
	if !oldest.Valid {
		return count, 0, nil
	}
	return count, time.Since(oldest.Time), nil
}

// stalledDrafts counts in-progress drafts whose deadline expired long
// enough ago that a tick should already have fired.
func (h *HealthChecker) stalledDrafts(ctx context.Context) (int, error) {
	var count int
	row := h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM drafts
		 WHERE status = 'IN_PROGRESS' AND pick_deadline < NOW() - ($1 * INTERVAL '1 second')`,
		int(h.stalledAfter.Seconds()))
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ServeHTTP exposes the check as a health endpoint.
func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := h.Check(ctx)

	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Error().Err(err).Msg("failed to encode health response")
	}
}
