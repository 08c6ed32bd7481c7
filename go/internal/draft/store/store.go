// Package store is the typed persistence layer for drafts and their child
// tables. Every mutation takes the *db.Queries handle of an open
// transaction; there are no out-of-transaction aliases, so a caller cannot
// forget to pass the client. Reads issued through Hint() run on the pool and
// are treated as hints only -- authoritative reads happen inside the draft
// lock with the transaction's handle.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/models"
	"github.com/draftforge/dynasty/go/internal/sqlutil"
)

type Store struct {
	sqlDB *sql.DB
	hint  *db.Queries
}

func New(sqlDB *sql.DB) *Store {
	return &Store{
		sqlDB: sqlDB,
		hint:  db.New(sqlDB),
	}
}

// InTx runs fn inside a database transaction. The *db.Queries passed to fn
// is bound to that transaction; fn returning an error rolls everything
// back. The raw tx is exposed alongside so completion-time collaborators
// can bind their own query packages to the same transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx *sql.Tx, q *db.Queries) error) error {
	return sqlutil.RunTx(ctx, s.sqlDB, func(tx *sql.Tx) *db.Queries {
		return db.New(tx)
	}, fn)
}

// Hint exposes the pool-bound query handle for reads outside the draft
// lock. Values read through it may be stale by the time a lock is held.
func (s *Store) Hint() *db.Queries {
	return s.hint
}

// ListDueDraftIDs enumerates tick candidates off the pool. Implements the
// scheduler's CandidateSource.
func (s *Store) ListDueDraftIDs(ctx context.Context, limit int32) ([]uuid.UUID, error) {
	rows, err := s.hint.ListDraftsDueForTick(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list due drafts: %w", err)
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

// GetDraft reads a draft without locking it.
func (s *Store) GetDraft(ctx context.Context, q *db.Queries, draftID uuid.UUID) (*models.Draft, error) {
	row, err := q.GetDraft(ctx, draftID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeDraftNotFound, draftID.String())
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return draftToModel(row)
}

// GetDraftForUpdate row-locks and reads the draft. Callers hold the DRAFT
// advisory lock; the row lock guards against writers that bypass it.
func (s *Store) GetDraftForUpdate(ctx context.Context, q *db.Queries, draftID uuid.UUID) (*models.Draft, error) {
	row, err := q.GetDraftForUpdate(ctx, draftID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeDraftNotFound, draftID.String())
		}
		return nil, fmt.Errorf("get draft for update: %w", err)
	}
	return draftToModel(row)
}

type CreateDraftParams struct {
	LeagueID  uuid.UUID
	DraftType models.DraftType
	Settings  models.DraftSettings

	OvernightPauseEnabled bool
	OvernightPauseStart   string
	OvernightPauseEnd     string

	ScheduledAt *time.Time
}

func (s *Store) CreateDraft(ctx context.Context, q *db.Queries, p CreateDraftParams) (*models.Draft, error) {
	settings := p.Settings.WithDefaults()
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	stateJSON, err := marshalDraftState(models.DraftState{})
	if err != nil {
		return nil, err
	}
	var start, end sql.NullString
	if p.OvernightPauseStart != "" {
		start = sql.NullString{String: p.OvernightPauseStart, Valid: true}
	}
	if p.OvernightPauseEnd != "" {
		end = sql.NullString{String: p.OvernightPauseEnd, Valid: true}
	}
	row, err := q.CreateDraft(ctx, db.CreateDraftParams{
		ID:                    uuid.New(),
		LeagueID:              p.LeagueID,
		DraftType:             string(p.DraftType),
		Status:                string(models.DraftStatusNotStarted),
		Rounds:                int32(settings.Rounds),
		PickTimeSeconds:       int32(settings.PickTimeSeconds),
		OvernightPauseEnabled: p.OvernightPauseEnabled,
		OvernightPauseStart:   start,
		OvernightPauseEnd:     end,
		Settings:              settingsJSON,
		DraftState:            stateJSON,
		ScheduledAt:           nullTime(p.ScheduledAt),
	})
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return draftToModel(row)
}

// ListDraftOrder returns the order sorted by position ascending.
func (s *Store) ListDraftOrder(ctx context.Context, q *db.Queries, draftID uuid.UUID) ([]models.DraftOrderEntry, error) {
	rows, err := q.ListDraftOrder(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list draft order: %w", err)
	}
	return orderToModels(rows), nil
}

// SetDraftOrder upserts the given positions. Positions must form {1..N};
// the caller validates, this just writes.
func (s *Store) SetDraftOrder(ctx context.Context, q *db.Queries, draftID uuid.UUID, entries []models.DraftOrderEntry) error {
	for _, e := range entries {
		if err := q.InsertDraftOrderEntry(ctx, db.InsertDraftOrderEntryParams{
			DraftID:            draftID,
			RosterID:           e.RosterID,
			DraftPosition:      int32(e.DraftPosition),
			IsAutodraftEnabled: e.IsAutodraftEnabled,
		}); err != nil {
			return fmt.Errorf("set draft order position %d: %w", e.DraftPosition, err)
		}
	}
	return nil
}

func (s *Store) SetAutodraftEnabled(ctx context.Context, q *db.Queries, draftID, rosterID uuid.UUID, enabled bool) error {
	if err := q.SetAutodraftEnabled(ctx, db.SetAutodraftEnabledParams{
		DraftID:            draftID,
		RosterID:           rosterID,
		IsAutodraftEnabled: enabled,
	}); err != nil {
		return fmt.Errorf("set autodraft: %w", err)
	}
	return nil
}

// ListPickAssets returns the draft-attached pick assets.
func (s *Store) ListPickAssets(ctx context.Context, q *db.Queries, draftID uuid.UUID) ([]models.PickAsset, error) {
	rows, err := q.ListPickAssetsByDraft(ctx, uuid.NullUUID{UUID: draftID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("list pick assets: %w", err)
	}
	return pickAssetsToModels(rows), nil
}

func (s *Store) GetPickAsset(ctx context.Context, q *db.Queries, assetID uuid.UUID) (*models.PickAsset, error) {
	row, err := q.GetPickAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodePickAssetNotFound, assetID.String())
		}
		return nil, fmt.Errorf("get pick asset: %w", err)
	}
	asset := pickAssetToModel(row)
	return &asset, nil
}

func (s *Store) ListDraftPicks(ctx context.Context, q *db.Queries, draftID uuid.UUID) ([]models.DraftPick, error) {
	rows, err := q.ListDraftPicks(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list draft picks: %w", err)
	}
	return picksToModels(rows)
}

// GetPickByNumber returns the pick at number, or nil when none exists.
func (s *Store) GetPickByNumber(ctx context.Context, q *db.Queries, draftID uuid.UUID, pickNumber int) (*models.DraftPick, error) {
	row, err := q.GetDraftPickByNumber(ctx, db.GetDraftPickByNumberParams{
		DraftID:    draftID,
		PickNumber: int32(pickNumber),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pick by number: %w", err)
	}
	return pickToModel(row)
}

// DraftedPlayerIDs returns the set of players already picked in the draft.
func (s *Store) DraftedPlayerIDs(ctx context.Context, q *db.Queries, draftID uuid.UUID) (map[uuid.UUID]bool, error) {
	ids, err := q.ListDraftedPlayerIDs(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list drafted players: %w", err)
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *Store) ListVetSelections(ctx context.Context, q *db.Queries, draftID uuid.UUID) ([]models.VetDraftPickSelection, error) {
	rows, err := q.ListVetDraftPickSelections(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list vet selections: %w", err)
	}
	out := make([]models.VetDraftPickSelection, len(rows))
	for i, r := range rows {
		out[i] = vetSelectionToModel(r)
	}
	return out, nil
}

func (s *Store) ListQueueForRoster(ctx context.Context, q *db.Queries, draftID, rosterID uuid.UUID) ([]models.DraftQueueEntry, error) {
	rows, err := q.ListDraftQueueForRoster(ctx, db.ListDraftQueueForRosterParams{
		DraftID:  draftID,
		RosterID: rosterID,
	})
	if err != nil {
		return nil, fmt.Errorf("list queue: %w", err)
	}
	return queueToModels(rows), nil
}

type QueueEntryParams struct {
	DraftID       uuid.UUID
	RosterID      uuid.UUID
	PlayerID      *uuid.UUID
	PickAssetID   *uuid.UUID
	QueuePosition int
}

func (s *Store) AddQueueEntry(ctx context.Context, q *db.Queries, p QueueEntryParams) (*models.DraftQueueEntry, error) {
	row, err := q.InsertDraftQueueEntry(ctx, db.InsertDraftQueueEntryParams{
		ID:            uuid.New(),
		DraftID:       p.DraftID,
		RosterID:      p.RosterID,
		PlayerID:      nullUUID(p.PlayerID),
		PickAssetID:   nullUUID(p.PickAssetID),
		QueuePosition: int32(p.QueuePosition),
	})
	if err != nil {
		return nil, fmt.Errorf("insert queue entry: %w", err)
	}
	entry := queueEntryToModel(row)
	return &entry, nil
}

// ReplaceQueue rewrites a roster's queue with the given entries in order.
func (s *Store) ReplaceQueue(ctx context.Context, q *db.Queries, draftID, rosterID uuid.UUID, entries []QueueEntryParams) error {
	if err := q.DeleteDraftQueueForRoster(ctx, db.DeleteDraftQueueForRosterParams{
		DraftID:  draftID,
		RosterID: rosterID,
	}); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}
	for i, e := range entries {
		e.QueuePosition = i + 1
		if _, err := s.AddQueueEntry(ctx, q, e); err != nil {
			return err
		}
	}
	return nil
}

// ListChessClocks returns remaining budgets keyed by roster.
func (s *Store) ListChessClocks(ctx context.Context, q *db.Queries, draftID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := q.ListChessClocks(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list chess clocks: %w", err)
	}
	out := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		out[r.RosterID] = int(r.RemainingSeconds)
	}
	return out, nil
}

func (s *Store) SetChessClock(ctx context.Context, q *db.Queries, draftID, rosterID uuid.UUID, remainingSeconds int) error {
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	if err := q.UpsertChessClock(ctx, db.UpsertChessClockParams{
		DraftID:          draftID,
		RosterID:         rosterID,
		RemainingSeconds: int32(remainingSeconds),
	}); err != nil {
		return fmt.Errorf("upsert chess clock: %w", err)
	}
	return nil
}

// GetOperation returns a stored commissioner-action result, or nil when no
// live record exists for the key.
func (s *Store) GetOperation(ctx context.Context, q *db.Queries, idempotencyKey string, userID uuid.UUID, operationType string) (*models.OperationRecord, error) {
	row, err := q.GetDraftOperation(ctx, db.GetDraftOperationParams{
		IdempotencyKey: idempotencyKey,
		UserID:         userID,
		OperationType:  operationType,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft operation: %w", err)
	}
	rec := operationToModel(row)
	return &rec, nil
}

// PurgeExpiredOperations drops operation records past their TTL. Called
// opportunistically; losing a purge only delays cleanup.
func (s *Store) PurgeExpiredOperations(ctx context.Context) error {
	if err := s.hint.DeleteExpiredDraftOperations(ctx); err != nil {
		return fmt.Errorf("purge expired operations: %w", err)
	}
	return nil
}

func (s *Store) PutOperation(ctx context.Context, q *db.Queries, rec models.OperationRecord) error {
	if err := q.InsertDraftOperation(ctx, db.InsertDraftOperationParams{
		IdempotencyKey: rec.IdempotencyKey,
		UserID:         rec.UserID,
		OperationType:  rec.OperationType,
		DraftID:        rec.DraftID,
		Result:         rec.Result,
		ExpiresAt:      time.Unix(rec.ExpiresAtUnix, 0),
	}); err != nil {
		return fmt.Errorf("insert draft operation: %w", err)
	}
	return nil
}

// DeleteDraftCascade removes a draft and its child rows. It deletes only the
// draft row; the children go through the foreign keys' cascades, and no
// child table is deleted explicitly.
func (s *Store) DeleteDraftCascade(ctx context.Context, q *db.Queries, draftID uuid.UUID) error {
	if err := q.DeleteDraft(ctx, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
