package gateway

import (
	"testing"
	"time"

	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/google/uuid"
)

func mustEvent(t *testing.T, draftID uuid.UUID, eventType events.Type, payload any) *DraftEvent {
	t.Helper()
	event, err := NewDraftEvent(draftID, eventType, payload)
	if err != nil {
		t.Fatalf("NewDraftEvent(%s): %v", eventType, err)
	}
	return event
}

func TestProcessEventTracksDraftLifecycle(t *testing.T) {
	dsm := NewDraftStateManager()
	draftID := uuid.New()
	roster := uuid.New().String()
	deadline := time.Now().Add(time.Minute)

	steps := []*DraftEvent{
		mustEvent(t, draftID, events.TypeDraftStarted, events.DraftStartedPayload{
			DraftID:    draftID.String(),
			StartedAt:  time.Now(),
			TotalPicks: 6,
		}),
		mustEvent(t, draftID, events.TypeDraftNextPick, events.DraftNextPickPayload{
			DraftID:         draftID.String(),
			CurrentPick:     1,
			CurrentRound:    1,
			CurrentRosterID: roster,
			PickDeadline:    &deadline,
		}),
	}
	for _, event := range steps {
		if err := dsm.ProcessEvent(event); err != nil {
			t.Fatalf("ProcessEvent(%s): %v", event.Type, err)
		}
	}

	state := dsm.GetState(draftID)
	if state == nil {
		t.Fatal("expected tracked state")
	}
	if state.Status != "IN_PROGRESS" || state.TotalPicks != 6 {
		t.Errorf("state = %+v", state)
	}
	if state.CurrentPick == nil || state.CurrentPick.RosterID != roster {
		t.Fatalf("current pick = %+v", state.CurrentPick)
	}
	if state.CurrentPick.TimeRemainingSec <= 0 {
		t.Error("future deadline must leave time on the clock")
	}
}

func TestProcessEventCountsOnlyForwardPicks(t *testing.T) {
	dsm := NewDraftStateManager()
	draftID := uuid.New()

	forward := mustEvent(t, draftID, events.TypeDraftPick, events.DraftPickPayload{
		DraftID:    draftID.String(),
		PickNumber: 3,
	})
	reciprocal := mustEvent(t, draftID, events.TypeDraftPick, events.DraftPickPayload{
		DraftID:    draftID.String(),
		PickNumber: -3,
	})
	if err := dsm.ProcessEvent(forward); err != nil {
		t.Fatal(err)
	}
	if err := dsm.ProcessEvent(reciprocal); err != nil {
		t.Fatal(err)
	}

	if got := dsm.GetState(draftID).CompletedPicks; got != 1 {
		t.Errorf("completed picks = %d, want 1 (reciprocal rows don't count)", got)
	}
}

func TestProcessEventPauseFreezesCountdown(t *testing.T) {
	dsm := NewDraftStateManager()
	draftID := uuid.New()
	deadline := time.Now().Add(time.Minute)

	if err := dsm.ProcessEvent(mustEvent(t, draftID, events.TypeDraftNextPick, events.DraftNextPickPayload{
		DraftID:         draftID.String(),
		CurrentPick:     2,
		CurrentRosterID: uuid.New().String(),
		PickDeadline:    &deadline,
	})); err != nil {
		t.Fatal(err)
	}
	if err := dsm.ProcessEvent(mustEvent(t, draftID, events.TypeDraftPaused, events.DraftPausedPayload{
		DraftID:          draftID.String(),
		PausedAt:         time.Now(),
		RemainingSeconds: 42,
	})); err != nil {
		t.Fatal(err)
	}

	state := dsm.GetState(draftID)
	if state.Status != "PAUSED" {
		t.Errorf("status = %s", state.Status)
	}
	if state.CurrentPick.Deadline != nil {
		t.Error("pause must clear the deadline")
	}
	if state.CurrentPick.TimeRemainingSec != 42 {
		t.Errorf("frozen countdown = %d, want 42", state.CurrentPick.TimeRemainingSec)
	}
}

func TestProcessEventUndoReopensCompletedDraft(t *testing.T) {
	dsm := NewDraftStateManager()
	draftID := uuid.New()

	if err := dsm.ProcessEvent(mustEvent(t, draftID, events.TypeDraftCompleted, events.DraftCompletedPayload{
		DraftID:     draftID.String(),
		CompletedAt: time.Now(),
		TotalPicks:  6,
	})); err != nil {
		t.Fatal(err)
	}
	if err := dsm.ProcessEvent(mustEvent(t, draftID, events.TypeDraftPickUndone, events.DraftPickUndonePayload{
		DraftID:         draftID.String(),
		PickNumber:      6,
		CurrentPick:     6,
		CurrentRound:    2,
		CurrentRosterID: uuid.New().String(),
		UndoneAt:        time.Now(),
	})); err != nil {
		t.Fatal(err)
	}

	state := dsm.GetState(draftID)
	if state.Status != "IN_PROGRESS" || state.CompletedAt != nil {
		t.Errorf("undo must reopen the draft, state = %+v", state)
	}
	if state.CurrentPick == nil || state.CurrentPick.PickNumber != 6 {
		t.Errorf("current pick = %+v", state.CurrentPick)
	}
}

func TestProcessEventIgnoresUntrackedTypes(t *testing.T) {
	dsm := NewDraftStateManager()
	draftID := uuid.New()

	if err := dsm.ProcessEvent(mustEvent(t, draftID, events.TypeDraftQueueUpdated, events.DraftQueueUpdatedPayload{
		DraftID:  draftID.String(),
		RosterID: uuid.New().String(),
		Action:   events.QueueActionAdded,
	})); err != nil {
		t.Fatalf("queue events must be tolerated: %v", err)
	}
	if state := dsm.GetState(draftID); state == nil {
		t.Fatal("even untracked events register the draft")
	}
}
