package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/models"
)

// DraftFromRow converts a raw draft row. Exported for callers that issue
// bespoke draft updates through db.Queries and need the typed result.
func DraftFromRow(d db.Draft) (*models.Draft, error) {
	return draftToModel(d)
}

func draftToModel(d db.Draft) (*models.Draft, error) {
	var settings models.DraftSettings
	if len(d.Settings) > 0 {
		if err := json.Unmarshal(d.Settings, &settings); err != nil {
			return nil, fmt.Errorf("unmarshal draft settings: %w", err)
		}
	}
	var state models.DraftState
	if len(d.DraftState) > 0 {
		if err := json.Unmarshal(d.DraftState, &state); err != nil {
			return nil, fmt.Errorf("unmarshal draft state: %w", err)
		}
	}

	out := &models.Draft{
		ID:       d.ID,
		LeagueID: d.LeagueID,

		DraftType: models.DraftType(d.DraftType),
		Status:    models.DraftStatus(d.Status),

		Rounds:          int(d.Rounds),
		CurrentPick:     int(d.CurrentPick),
		CurrentRound:    int(d.CurrentRound),
		PickTimeSeconds: int(d.PickTimeSeconds),

		OrderConfirmed: d.OrderConfirmed,

		OvernightPauseEnabled: d.OvernightPauseEnabled,
		OvernightPauseStart:   d.OvernightPauseStart.String,
		OvernightPauseEnd:     d.OvernightPauseEnd.String,

		Settings:   settings.WithDefaults(),
		DraftState: state,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.CurrentRosterID.Valid {
		id := d.CurrentRosterID.UUID
		out.CurrentRosterID = &id
	}
	out.PickDeadline = nullTimePtr(d.PickDeadline)
	out.ScheduledAt = nullTimePtr(d.ScheduledAt)
	out.StartedAt = nullTimePtr(d.StartedAt)
	out.CompletedAt = nullTimePtr(d.CompletedAt)
	return out, nil
}

func orderEntryToModel(e db.DraftOrderEntry) models.DraftOrderEntry {
	return models.DraftOrderEntry{
		DraftID:            e.DraftID,
		RosterID:           e.RosterID,
		DraftPosition:      int(e.DraftPosition),
		IsAutodraftEnabled: e.IsAutodraftEnabled,
	}
}

func orderToModels(entries []db.DraftOrderEntry) []models.DraftOrderEntry {
	out := make([]models.DraftOrderEntry, len(entries))
	for i, e := range entries {
		out[i] = orderEntryToModel(e)
	}
	return out
}

func pickToModel(p db.DraftPick) (*models.DraftPick, error) {
	out := &models.DraftPick{
		ID:      p.ID,
		DraftID: p.DraftID,

		PickNumber:  int(p.PickNumber),
		Round:       int(p.Round),
		PickInRound: int(p.PickInRound),

		RosterID: p.RosterID,

		IsAutoPick: p.IsAutoPick,
		PickedAt:   p.PickedAt,
	}
	if p.PlayerID.Valid {
		id := p.PlayerID.UUID
		out.PlayerID = &id
	}
	if len(p.PickMetadata) > 0 && string(p.PickMetadata) != "null" {
		var md models.PickMetadata
		if err := json.Unmarshal(p.PickMetadata, &md); err != nil {
			return nil, fmt.Errorf("unmarshal pick metadata: %w", err)
		}
		out.PickMetadata = &md
	}
	if p.IdempotencyKey.Valid {
		k := p.IdempotencyKey.String
		out.IdempotencyKey = &k
	}
	return out, nil
}

func picksToModels(picks []db.DraftPick) ([]models.DraftPick, error) {
	out := make([]models.DraftPick, len(picks))
	for i, p := range picks {
		m, err := pickToModel(p)
		if err != nil {
			return nil, err
		}
		out[i] = *m
	}
	return out, nil
}

func pickAssetToModel(a db.DraftPickAsset) models.PickAsset {
	out := models.PickAsset{
		ID:       a.ID,
		LeagueID: a.LeagueID,

		Season: a.Season,
		Round:  int(a.Round),

		OriginalRosterID:     a.OriginalRosterID,
		CurrentOwnerRosterID: a.CurrentOwnerRosterID,
	}
	if a.DraftID.Valid {
		id := a.DraftID.UUID
		out.DraftID = &id
	}
	if a.OriginalPickPosition.Valid {
		pos := int(a.OriginalPickPosition.Int32)
		out.OriginalPickPosition = &pos
	}
	return out
}

func pickAssetsToModels(assets []db.DraftPickAsset) []models.PickAsset {
	out := make([]models.PickAsset, len(assets))
	for i, a := range assets {
		out[i] = pickAssetToModel(a)
	}
	return out
}

func queueEntryToModel(e db.DraftQueueEntry) models.DraftQueueEntry {
	out := models.DraftQueueEntry{
		ID:            e.ID,
		DraftID:       e.DraftID,
		RosterID:      e.RosterID,
		QueuePosition: int(e.QueuePosition),
	}
	if e.PlayerID.Valid {
		id := e.PlayerID.UUID
		out.PlayerID = &id
	}
	if e.PickAssetID.Valid {
		id := e.PickAssetID.UUID
		out.PickAssetID = &id
	}
	return out
}

func queueToModels(entries []db.DraftQueueEntry) []models.DraftQueueEntry {
	out := make([]models.DraftQueueEntry, len(entries))
	for i, e := range entries {
		out[i] = queueEntryToModel(e)
	}
	return out
}

func chessClockToModel(c db.DraftChessClock) models.ChessClockEntry {
	return models.ChessClockEntry{
		DraftID:          c.DraftID,
		RosterID:         c.RosterID,
		RemainingSeconds: int(c.RemainingSeconds),
	}
}

func vetSelectionToModel(s db.VetDraftPickSelection) models.VetDraftPickSelection {
	return models.VetDraftPickSelection{
		DraftID:          s.DraftID,
		DraftPickAssetID: s.DraftPickAssetID,
		PickNumber:       int(s.PickNumber),
		RosterID:         s.RosterID,
	}
}

func operationToModel(o db.DraftOperation) models.OperationRecord {
	return models.OperationRecord{
		IdempotencyKey: o.IdempotencyKey,
		UserID:         o.UserID,
		OperationType:  o.OperationType,
		DraftID:        o.DraftID,
		Result:         o.Result,
		CreatedAtUnix:  o.CreatedAt.Unix(),
		ExpiresAtUnix:  o.ExpiresAt.Unix(),
	}
}

func marshalDraftState(state models.DraftState) (json.RawMessage, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal draft state: %w", err)
	}
	return raw, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
