package schedule

import (
	"context"
)

// listMaxResults bounds how many events a schedule listing fetches.
const listMaxResults = 10

// ListEvents returns the events between two dates, ordered by start time.
// Both bounds are date or date/time literals in the configured zone; the
// end bound is widened to the end of its day so "2026-03-02" covers the
// whole of March 2nd.
func (e *Engine) ListEvents(ctx context.Context, startDate, endDate string) ([]EventRecord, error) {
	start, err := ParseDateTime(startDate, e.cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	end, err := ParseDateTime(endDate, e.cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	end = endOfDay(end, e.cfg.TimeZone)
	if end.Before(start) {
		return nil, parseError("end date %q precedes start date %q", endDate, startDate)
	}

	records, err := e.gw.ListEvents(ctx, e.cfg.CalendarID, start, end, "", listMaxResults)
	if err != nil {
		return nil, gatewayError("event listing failed", err)
	}
	return records, nil
}
