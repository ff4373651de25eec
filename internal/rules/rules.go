// Package rules implements the scheduling business rules: overlap detection
// against the remote calendar and the future-date requirement.
package rules

import (
	"context"
	"log"
	"time"

	"calendarbot/internal/meeting"
	"calendarbot/internal/timeparse"
)

// EventLister is the read capability the conflict check needs; satisfied by
// *gcal.Client.
type EventLister interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]meeting.Meeting, error)
}

// Engine evaluates scheduling rules. Construct one per calendar client.
// Now is the clock used by the future-date rule; tests override it.
type Engine struct {
	lister EventLister
	Now    func() time.Time
}

func NewEngine(lister EventLister) *Engine {
	return &Engine{lister: lister, Now: time.Now}
}

// CheckConflict fetches the calendar day containing the proposed slot and
// returns the first existing meeting whose one-hour interval overlaps it,
// skipping excludeEventID so an update does not conflict with itself.
//
// A failure to list the day's events is logged and reported as no conflict;
// the future-date rule below is the fail-closed one.
func (e *Engine) CheckConflict(ctx context.Context, date, clock, excludeEventID string) *meeting.Meeting {
	start, err := timeparse.Combine(date, clock)
	if err != nil {
		return nil
	}
	end := start.Add(meeting.DefaultDuration)

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	events, err := e.lister.ListEvents(ctx, dayStart, dayEnd)
	if err != nil {
		log.Printf("Conflict check skipped, could not list events: %v", err)
		return nil
	}

	for _, ev := range events {
		if excludeEventID != "" && ev.GoogleEventID == excludeEventID {
			continue
		}
		evStart, err := timeparse.Combine(ev.Date, ev.Time)
		if err != nil {
			continue
		}
		evEnd := evStart.Add(meeting.DefaultDuration)

		// Half-open intervals: touching boundaries do not overlap.
		if start.Before(evEnd) && evStart.Before(end) {
			return &ev
		}
	}
	return nil
}

// ValidateFuture reports whether the combined instant is strictly after now.
// Parse failures count as not-future.
func (e *Engine) ValidateFuture(date, clock string) bool {
	return timeparse.IsFutureAt(date, clock, e.Now())
}
