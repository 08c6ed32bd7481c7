package engine

import (
	"fmt"
	"time"

	"github.com/draftforge/dynasty/go/internal/models"
)

// inOvernightWindow reports whether now falls inside the draft's overnight
// pause window [start, end), interpreted in the draft's configured zone.
// Windows may wrap midnight (23:00 -> 07:00).
func inOvernightWindow(draft *models.Draft, now time.Time) (bool, error) {
	if !draft.OvernightPauseEnabled || draft.OvernightPauseStart == "" || draft.OvernightPauseEnd == "" {
		return false, nil
	}
	loc, err := time.LoadLocation(draft.Settings.TimeZone)
	if err != nil {
		return false, fmt.Errorf("load overnight pause zone %q: %w", draft.Settings.TimeZone, err)
	}
	start, err := parseWallClock(draft.OvernightPauseStart)
	if err != nil {
		return false, err
	}
	end, err := parseWallClock(draft.OvernightPauseEnd)
	if err != nil {
		return false, err
	}

	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()

	if start == end {
		return false, nil
	}
	if start < end {
		return minute >= start && minute < end, nil
	}
	// wrap-around window, e.g. 23:00 -> 07:00
	return minute >= start || minute < end, nil
}

// parseWallClock converts "HH:MM" to minutes since midnight.
func parseWallClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse wall clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("wall clock %q out of range", s)
	}
	return h*60 + m, nil
}
