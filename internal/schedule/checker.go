package schedule

import (
	"context"
)

// Verdict classifies a proposed interval as available or conflicting.
// Conflicts lists every busy span overlapping the proposal, each with its
// own start and end, when Available is false.
type Verdict struct {
	Proposed  Interval
	Available bool
	Conflicts []Interval
}

// CheckAvailability queries busy data restricted to exactly the proposed
// interval and classifies it. The overlap predicate is the same one the
// slot scanner uses, so "find slots" and "check this slot" never disagree:
// a proposal that merely touches a busy boundary is available.
func (e *Engine) CheckAvailability(ctx context.Context, startDateTime, endDateTime string) (*Verdict, error) {
	start, err := ParseDateTime(startDateTime, e.cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	end, err := ParseDateTime(endDateTime, e.cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, parseError("start %s must be before end %s", FormatDateTime(start), FormatDateTime(end))
	}

	busy, err := e.gw.QueryFreeBusy(ctx, e.cfg.CalendarID, start, end)
	if err != nil {
		return nil, gatewayError("free/busy query failed", err)
	}

	proposed := Interval{Start: start, End: end}
	conflicts := proposed.conflictsWith(busy)
	return &Verdict{
		Proposed:  proposed,
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
