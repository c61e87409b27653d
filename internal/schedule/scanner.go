package schedule

import (
	"context"
	"time"

	"github.com/miavoice/scheduler-mcp/internal/logging"
)

const (
	// slotGranularity is the fixed step between candidate slot starts.
	slotGranularity = 30 * time.Minute

	// maxPresentedSlots caps the slots returned for presentation; the
	// true total is preserved so callers can report "N more available".
	maxPresentedSlots = 5
)

// Preference names a time-of-day window that maps to fixed hour bounds.
type Preference string

const (
	Morning   Preference = "morning"   // 08:00–12:00
	Afternoon Preference = "afternoon" // 12:00–17:00
	Evening   Preference = "evening"   // 17:00–20:00
	Anytime   Preference = "anytime"   // 08:00–18:00
)

// hours returns the day-local hour bounds of the preference. Anything
// unrecognized behaves as Anytime.
func (p Preference) hours() (startHour, endHour int) {
	switch p {
	case Morning:
		return 8, 12
	case Afternoon:
		return 12, 17
	case Evening:
		return 17, 20
	default:
		return 8, 18
	}
}

// SlotRequest carries the caller-supplied inputs of a slot search. Dates
// are literals in the shapes accepted by ParseDateTime.
type SlotRequest struct {
	DurationMinutes int
	StartDate       string
	EndDate         string
	Preference      Preference
}

// ScanResult is an ordered sequence of candidate free slots. Slots holds
// at most maxPresentedSlots entries in chronological order; Total is the
// true number found.
type ScanResult struct {
	Slots []Interval
	Total int
}

// More returns how many found slots were cut by the presentation cap.
func (r *ScanResult) More() int { return r.Total - len(r.Slots) }

// FindAvailableSlots enumerates free slots of the requested duration
// inside the date range and time-of-day window, at 30-minute granularity.
// A candidate is free when it overlaps no busy interval; touching a busy
// boundary exactly is not a conflict. An end date before the start date
// yields an empty result, not an error. Exactly one free/busy query covers
// the whole range; all enumeration happens locally.
func (e *Engine) FindAvailableSlots(ctx context.Context, req SlotRequest) (*ScanResult, error) {
	if req.DurationMinutes <= 0 {
		return nil, parseError("duration must be positive, got %d", req.DurationMinutes)
	}
	start, err := ParseDateTime(req.StartDate, e.cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	end, err := ParseDateTime(req.EndDate, e.cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	// Widen to end-of-day so a same-day request covers the whole day.
	end = endOfDay(end, e.cfg.TimeZone)
	if end.Before(start) {
		return &ScanResult{}, nil
	}

	busy, err := e.gw.QueryFreeBusy(ctx, e.cfg.CalendarID, start, end)
	if err != nil {
		return nil, gatewayError("free/busy query failed", err)
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	slots := scanRange(start, end, req.Preference, duration, busy, e.cfg.TimeZone)

	e.logger.Debug("slot scan complete",
		logging.Operation("find_available_slots"),
		"busy_intervals", len(busy),
		"slots_found", len(slots))

	result := &ScanResult{Slots: slots, Total: len(slots)}
	if result.Total > maxPresentedSlots {
		result.Slots = result.Slots[:maxPresentedSlots]
	}
	return result, nil
}

// scanRange walks each calendar day of the inclusive range and collects
// free candidates inside the preference's hour bounds. Candidates step
// forward at slotGranularity and a day ends as soon as a candidate no
// longer fits before the day's end hour.
func scanRange(start, end time.Time, pref Preference, duration time.Duration, busy []Interval, loc *time.Location) []Interval {
	startHour, endHour := pref.hours()

	var slots []Interval
	for day := start.In(loc); !day.After(end); day = day.AddDate(0, 0, 1) {
		y, m, d := day.Date()
		dayStart := time.Date(y, m, d, startHour, 0, 0, 0, loc)
		dayEnd := time.Date(y, m, d, endHour, 0, 0, 0, loc)

		for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(slotGranularity) {
			candidate := Interval{Start: cur, End: cur.Add(duration)}
			if !candidate.overlapsAny(busy) {
				slots = append(slots, candidate)
			}
		}
	}
	return slots
}
