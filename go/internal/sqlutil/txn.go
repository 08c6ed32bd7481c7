package sqlutil

import (
	"context"
	"database/sql"
)

// RunTx executes fn inside a *sql.Tx.
// If fn returns an error the tx rolls back, else it commits. The raw tx is
// handed to fn alongside the bound queries so callers can attach a second
// sqlc Queries package to the same transaction (e.g. the draft engine
// writing roster rows at completion).
func RunTx[T any](
	ctx context.Context,
	db *sql.DB,
	newQueries func(*sql.Tx) *T,
	fn func(tx *sql.Tx, q *T) error,
) error {
	tx, err := db.BeginTx(ctx, nil) // BEGIN
	if err != nil {
		return err
	}
	q := newQueries(tx) // bind sqlc Queries to this tx
	if err := fn(tx, q); err != nil {
		_ = tx.Rollback() // ROLLBACK
		return err
	}
	return tx.Commit() // COMMIT
}
