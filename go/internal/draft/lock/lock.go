// Package lock provides the single-writer critical section every draft
// mutation runs inside. All engine and scheduler writes to a given draft
// funnel through Runner.WithDraftLock so that a pick application, a
// commissioner action, and a scheduler tick can never interleave for the
// same draft, no matter how many service replicas are running.
package lock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// domainSalt namespaces the advisory lock key space so other subsystems can
// take out their own session locks without colliding with draft locks.
const domainSalt = 0x44524654 // "DRFT" as hex

// Runner acquires a Postgres session-level advisory lock scoped to a single
// draft ID and holds it for the lifetime of the supplied function. It is
// deliberately a thin wrapper around a dedicated pgxpool connection: the
// business transaction inside fn runs on its own connection (via
// sqlutil.RunTx against *sql.DB), so the lock and the data writes don't
// share a driver stack.
type Runner struct {
	pool *pgxpool.Pool
}

func NewRunner(pool *pgxpool.Pool) *Runner {
	return &Runner{pool: pool}
}

// WithDraftLock blocks until it holds the advisory lock for draftID, runs
// fn, then releases the lock. The lock is released even if fn panics by
// virtue of the deferred unlock running on connection Close -- it is a
// session lock, not a transaction lock, because the business transaction
// underneath fn may span multiple statements across its own connection.
func (r *Runner) WithDraftLock(ctx context.Context, draftID uuid.UUID, fn func(ctx context.Context) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire lock connection: %w", err)
	}
	defer conn.Release()

	key := lockKey(draftID)
	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1, $2)", domainSalt, key); err != nil {
		return fmt.Errorf("acquire draft lock: %w", err)
	}
	defer func() {
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1, $2)", domainSalt, key); err != nil {
			log.Error().Err(err).Str("draft_id", draftID.String()).Msg("failed to release draft lock")
		}
	}()

	return fn(ctx)
}

// TryWithDraftLock is the non-blocking variant the scheduler uses: a tick
// that can't immediately acquire the lock for a draft skips it this pass
// rather than queuing behind a concurrent pick, since the next tick will
// retry. It reports ok=false when the lock was not acquired.
func (r *Runner) TryWithDraftLock(ctx context.Context, draftID uuid.UUID, fn func(ctx context.Context) error) (ok bool, err error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire lock connection: %w", err)
	}
	defer conn.Release()

	key := lockKey(draftID)
	var acquired bool
	row := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1, $2)", domainSalt, key)
	if err := row.Scan(&acquired); err != nil {
		return false, fmt.Errorf("try-acquire draft lock: %w", err)
	}
	if !acquired {
		return false, nil
	}
	defer func() {
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1, $2)", domainSalt, key); err != nil {
			log.Error().Err(err).Str("draft_id", draftID.String()).Msg("failed to release draft lock")
		}
	}()

	return true, fn(ctx)
}

// lockKey folds a draft's UUID down to the int32 the two-argument advisory
// lock functions take as their object id.
func lockKey(draftID uuid.UUID) int32 {
	b := draftID[:]
	var h uint32
	for i := 0; i < len(b); i += 4 {
		var chunk uint32
		for j := 0; j < 4 && i+j < len(b); j++ {
			chunk = chunk<<8 | uint32(b[i+j])
		}
		h ^= chunk
	}
	return int32(h)
}
