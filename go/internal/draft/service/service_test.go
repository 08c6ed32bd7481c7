package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/models"
)

func TestValidateOrderPositions(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name    string
		order   []models.DraftOrderEntry
		wantErr bool
	}{
		{
			name: "contiguous positions pass",
			order: []models.DraftOrderEntry{
				{RosterID: a, DraftPosition: 1},
				{RosterID: b, DraftPosition: 2},
				{RosterID: c, DraftPosition: 3},
			},
		},
		{
			name:    "empty order fails",
			wantErr: true,
		},
		{
			name: "gap in positions fails",
			order: []models.DraftOrderEntry{
				{RosterID: a, DraftPosition: 1},
				{RosterID: b, DraftPosition: 3},
			},
			wantErr: true,
		},
		{
			name: "positions not starting at one fail",
			order: []models.DraftOrderEntry{
				{RosterID: a, DraftPosition: 2},
				{RosterID: b, DraftPosition: 3},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOrderPositions(tt.order)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateOrderPositions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.IsKind(err, apperrors.KindValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestQueueItemValid(t *testing.T) {
	playerID := uuid.New()
	assetID := uuid.New()

	if (QueueItem{}).valid() {
		t.Error("empty item must be invalid")
	}
	if !(QueueItem{PlayerID: &playerID}).valid() {
		t.Error("player-only item must be valid")
	}
	if !(QueueItem{PickAssetID: &assetID}).valid() {
		t.Error("asset-only item must be valid")
	}
	if (QueueItem{PlayerID: &playerID, PickAssetID: &assetID}).valid() {
		t.Error("item with both referents must be invalid")
	}
}

func TestQueuePayloadCarriesReferent(t *testing.T) {
	draftID, rosterID, playerID := uuid.New(), uuid.New(), uuid.New()
	payload := queuePayload(draftID, rosterID, "added", QueueItem{PlayerID: &playerID})
	if payload.PlayerID != playerID.String() {
		t.Errorf("player id = %q", payload.PlayerID)
	}
	if payload.PickAssetID != "" {
		t.Errorf("pick asset id must be empty, got %q", payload.PickAssetID)
	}
}
