package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/draftforge/dynasty/go/internal/draft/apperrors"
	"github.com/draftforge/dynasty/go/internal/draft/db"
	"github.com/draftforge/dynasty/go/internal/draft/eventbus"
	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/draftforge/dynasty/go/internal/draft/store"
	"github.com/draftforge/dynasty/go/internal/models"
)

// QueueItem is one autopick-preference entry: exactly one field set.
type QueueItem struct {
	PlayerID    *uuid.UUID
	PickAssetID *uuid.UUID
}

func (i QueueItem) valid() bool {
	return (i.PlayerID != nil) != (i.PickAssetID != nil)
}

// AddToQueue appends an item to the caller's autopick queue.
func (s *Service) AddToQueue(ctx context.Context, leagueID, draftID, userID uuid.UUID, item QueueItem) (*models.DraftQueueEntry, error) {
	if !item.valid() {
		return nil, apperrors.Validation(apperrors.CodeOrderInvalid, "exactly one of player or pick asset required")
	}
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return nil, err
	}

	var added *models.DraftQueueEntry
	err = s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		if _, err := s.store.GetDraftForUpdate(ctx, q, draftID); err != nil {
			return err
		}
		existing, err := s.store.ListQueueForRoster(ctx, q, draftID, rosterID)
		if err != nil {
			return err
		}
		entry, err := s.store.AddQueueEntry(ctx, q, store.QueueEntryParams{
			DraftID:       draftID,
			RosterID:      rosterID,
			PlayerID:      item.PlayerID,
			PickAssetID:   item.PickAssetID,
			QueuePosition: len(existing) + 1,
		})
		if err != nil {
			return err
		}
		added = entry
		return batch.Add(ctx, q, events.TypeDraftQueueUpdated, queuePayload(draftID, rosterID, events.QueueActionAdded, item))
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveFromQueue drops an item from the caller's queue.
func (s *Service) RemoveFromQueue(ctx context.Context, leagueID, draftID, userID uuid.UUID, item QueueItem) error {
	if !item.valid() {
		return apperrors.Validation(apperrors.CodeOrderInvalid, "exactly one of player or pick asset required")
	}
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return err
	}

	return s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		if _, err := s.store.GetDraftForUpdate(ctx, q, draftID); err != nil {
			return err
		}
		if item.PlayerID != nil {
			if err := q.DeleteDraftQueueEntryByPlayer(ctx, db.DeleteDraftQueueEntryByPlayerParams{
				DraftID:  draftID,
				RosterID: rosterID,
				PlayerID: *item.PlayerID,
			}); err != nil {
				return err
			}
		} else {
			entries, err := s.store.ListQueueForRoster(ctx, q, draftID, rosterID)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				if entry.PickAssetID != nil && *entry.PickAssetID == *item.PickAssetID {
					if err := q.DeleteDraftQueueEntry(ctx, entry.ID); err != nil {
						return err
					}
				}
			}
		}
		return batch.Add(ctx, q, events.TypeDraftQueueUpdated, queuePayload(draftID, rosterID, events.QueueActionRemoved, item))
	})
}

// ReorderQueue replaces the caller's queue with the given items in order.
func (s *Service) ReorderQueue(ctx context.Context, leagueID, draftID, userID uuid.UUID, items []QueueItem) error {
	for _, item := range items {
		if !item.valid() {
			return apperrors.Validation(apperrors.CodeOrderInvalid, "exactly one of player or pick asset required")
		}
	}
	rosterID, err := s.rosterForUser(ctx, leagueID, userID)
	if err != nil {
		return err
	}

	return s.withDraftTx(ctx, draftID, func(tx *sql.Tx, q *db.Queries, batch *eventbus.Batch) error {
		if _, err := s.store.GetDraftForUpdate(ctx, q, draftID); err != nil {
			return err
		}
		entries := make([]store.QueueEntryParams, len(items))
		for i, item := range items {
			entries[i] = store.QueueEntryParams{
				DraftID:     draftID,
				RosterID:    rosterID,
				PlayerID:    item.PlayerID,
				PickAssetID: item.PickAssetID,
			}
		}
		if err := s.store.ReplaceQueue(ctx, q, draftID, rosterID, entries); err != nil {
			return err
		}
		return batch.Add(ctx, q, events.TypeDraftQueueUpdated, events.DraftQueueUpdatedPayload{
			DraftID:  draftID.String(),
			RosterID: rosterID.String(),
			Action:   events.QueueActionReordered,
		})
	})
}

func queuePayload(draftID, rosterID uuid.UUID, action events.QueueAction, item QueueItem) events.DraftQueueUpdatedPayload {
	payload := events.DraftQueueUpdatedPayload{
		DraftID:  draftID.String(),
		RosterID: rosterID.String(),
		Action:   action,
	}
	if item.PlayerID != nil {
		payload.PlayerID = item.PlayerID.String()
	}
	if item.PickAssetID != nil {
		payload.PickAssetID = item.PickAssetID.String()
	}
	return payload
}
