package store

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/models"
)

func TestDraftToModelAppliesSettingsDefaults(t *testing.T) {
	rosterID := uuid.New()
	deadline := time.Now().Add(90 * time.Second)
	row := db.Draft{
		ID:              uuid.New(),
		LeagueID:        uuid.New(),
		DraftType:       "SNAKE",
		Status:          "IN_PROGRESS",
		Rounds:          12,
		CurrentPick:     5,
		CurrentRound:    2,
		PickTimeSeconds: 90,
		CurrentRosterID: uuid.NullUUID{UUID: rosterID, Valid: true},
		PickDeadline:    sql.NullTime{Time: deadline, Valid: true},
		Settings:        json.RawMessage(`{"rounds":12,"time_per_pick_sec":90}`),
		DraftState:      json.RawMessage(`{}`),
	}

	d, err := draftToModel(row)
	if err != nil {
		t.Fatalf("draftToModel: %v", err)
	}
	if d.Status != models.DraftStatusInProgress {
		t.Errorf("status = %s", d.Status)
	}
	if d.CurrentRosterID == nil || *d.CurrentRosterID != rosterID {
		t.Error("current roster not mapped")
	}
	if d.PickDeadline == nil || !d.PickDeadline.Equal(deadline) {
		t.Error("pick deadline not mapped")
	}
	// Defaults fill in on read so the engine never sees a zero-valued
	// timer mode or pool.
	if d.Settings.TimerMode != models.TimerModePerPick {
		t.Errorf("timer mode default = %s", d.Settings.TimerMode)
	}
	if len(d.Settings.PlayerPool) != 2 {
		t.Errorf("player pool default = %v", d.Settings.PlayerPool)
	}
	if d.Settings.ChessClockMinPickSeconds != 10 {
		t.Errorf("chess clock min = %d", d.Settings.ChessClockMinPickSeconds)
	}
}

func TestDraftToModelRejectsMalformedSettings(t *testing.T) {
	row := db.Draft{
		ID:       uuid.New(),
		Settings: json.RawMessage(`{"rounds":"twelve"`),
	}
	if _, err := draftToModel(row); err == nil {
		t.Fatal("expected malformed settings to fail conversion")
	}
}

func TestPickToModelRoundTripsMetadata(t *testing.T) {
	opponent := uuid.New()
	md, _ := json.Marshal(models.PickMetadata{Week: 7, OpponentRosterID: &opponent})
	row := db.DraftPick{
		ID:           uuid.New(),
		DraftID:      uuid.New(),
		PickNumber:   -3,
		Round:        1,
		PickInRound:  3,
		RosterID:     uuid.New(),
		PickMetadata: md,
		IsAutoPick:   true,
		PickedAt:     time.Now(),
	}

	pick, err := pickToModel(row)
	if err != nil {
		t.Fatalf("pickToModel: %v", err)
	}
	if pick.PickNumber != -3 {
		t.Errorf("reciprocal pick number = %d", pick.PickNumber)
	}
	if pick.PlayerID != nil {
		t.Error("matchup pick must have no player")
	}
	if pick.PickMetadata == nil || pick.PickMetadata.Week != 7 {
		t.Fatal("week metadata lost")
	}
	if pick.PickMetadata.OpponentRosterID == nil || *pick.PickMetadata.OpponentRosterID != opponent {
		t.Error("opponent metadata lost")
	}
}

func TestPickToModelNullMetadata(t *testing.T) {
	playerID := uuid.New()
	row := db.DraftPick{
		ID:           uuid.New(),
		DraftID:      uuid.New(),
		PickNumber:   1,
		Round:        1,
		PickInRound:  1,
		RosterID:     uuid.New(),
		PlayerID:     uuid.NullUUID{UUID: playerID, Valid: true},
		PickMetadata: json.RawMessage(`null`),
	}
	pick, err := pickToModel(row)
	if err != nil {
		t.Fatalf("pickToModel: %v", err)
	}
	if pick.PickMetadata != nil {
		t.Error("JSON null must map to no metadata")
	}
	if pick.PlayerID == nil || *pick.PlayerID != playerID {
		t.Error("player id lost")
	}
}

func TestPickAssetToModel(t *testing.T) {
	draftID := uuid.New()
	row := db.DraftPickAsset{
		ID:                   uuid.New(),
		LeagueID:             uuid.New(),
		DraftID:              uuid.NullUUID{UUID: draftID, Valid: true},
		Season:               "2027",
		Round:                2,
		OriginalRosterID:     uuid.New(),
		CurrentOwnerRosterID: uuid.New(),
		OriginalPickPosition: sql.NullInt32{Int32: 4, Valid: true},
	}
	asset := pickAssetToModel(row)
	if asset.DraftID == nil || *asset.DraftID != draftID {
		t.Error("draft id lost")
	}
	if asset.OriginalPickPosition == nil || *asset.OriginalPickPosition != 4 {
		t.Error("original position lost")
	}
}
