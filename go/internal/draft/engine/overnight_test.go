package engine

import (
	"testing"
	"time"

	"github.com/draftforge/dynasty/go/internal/models"
)

func overnightDraft(start, end, zone string) *models.Draft {
	return &models.Draft{
		OvernightPauseEnabled: true,
		OvernightPauseStart:   start,
		OvernightPauseEnd:     end,
		Settings:              models.DraftSettings{TimeZone: zone}.WithDefaults(),
	}
}

func TestInOvernightWindow(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		now   string // HH:MM in UTC
		want  bool
	}{
		{"inside simple window", "00:30", "08:00", "03:15", true},
		{"before simple window", "00:30", "08:00", "00:15", false},
		{"at window start", "00:30", "08:00", "00:30", true},
		{"at window end is outside", "00:30", "08:00", "08:00", false},
		{"inside wrap-around before midnight", "23:00", "07:00", "23:30", true},
		{"inside wrap-around after midnight", "23:00", "07:00", "04:00", true},
		{"outside wrap-around", "23:00", "07:00", "12:00", false},
		{"degenerate equal window never pauses", "06:00", "06:00", "06:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := overnightDraft(tt.start, tt.end, "UTC")
			now, err := time.Parse("15:04", tt.now)
			if err != nil {
				t.Fatal(err)
			}
			got, err := inOvernightWindow(draft, now.UTC())
			if err != nil {
				t.Fatalf("inOvernightWindow: %v", err)
			}
			if got != tt.want {
				t.Errorf("window %s-%s at %s: got %v, want %v", tt.start, tt.end, tt.now, got, tt.want)
			}
		})
	}
}

func TestInOvernightWindowHonorsZone(t *testing.T) {
	// 02:00 UTC is 21:00 the previous evening in New York: outside a
	// 00:30-08:00 eastern window.
	draft := overnightDraft("00:30", "08:00", "America/New_York")
	now := time.Date(2026, time.January, 10, 2, 0, 0, 0, time.UTC)
	got, err := inOvernightWindow(draft, now)
	if err != nil {
		t.Fatalf("inOvernightWindow: %v", err)
	}
	if got {
		t.Error("02:00 UTC should be outside the eastern overnight window")
	}
}

func TestInOvernightWindowDisabled(t *testing.T) {
	draft := overnightDraft("00:30", "08:00", "UTC")
	draft.OvernightPauseEnabled = false
	got, err := inOvernightWindow(draft, time.Now())
	if err != nil {
		t.Fatalf("inOvernightWindow: %v", err)
	}
	if got {
		t.Error("disabled window must never pause")
	}
}

func TestInOvernightWindowBadZone(t *testing.T) {
	draft := overnightDraft("00:30", "08:00", "Not/AZone")
	if _, err := inOvernightWindow(draft, time.Now()); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
