package calendar

import (
	"context"
	"time"
)

// MarkerTicker recomputes the current-time marker of a displayed week.
type MarkerTicker struct {
	Week     Day
	Scale    Scale
	Now      func() time.Time
	Interval time.Duration
}

// Run calls emit with the marker immediately and then once per Interval
// (one minute when unset) until ctx is done or emit fails. emit receives nil
// while the week does not contain the current day.
func (t MarkerTicker) Run(ctx context.Context, emit func(*TimeMarker) error) error {
	now := t.Now
	if now == nil {
		now = time.Now
	}
	interval := t.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	start := WeekStart(t.Week)

	if err := emit(CurrentTimeMarker(start, now(), t.Scale)); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := emit(CurrentTimeMarker(start, now(), t.Scale)); err != nil {
				return err
			}
		}
	}
}
