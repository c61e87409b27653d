package calendar

import (
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/miavoice/scheduler-mcp/internal/schedule"
)

// busyInterval converts one free/busy period into a schedule.Interval.
// The provider always emits RFC3339 timestamps here; anything else is a
// protocol violation worth failing on.
func busyInterval(period *calendar.TimePeriod) (schedule.Interval, error) {
	start, err := time.Parse(time.RFC3339, period.Start)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("invalid busy period start %q: %w", period.Start, err)
	}
	end, err := time.Parse(time.RFC3339, period.End)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("invalid busy period end %q: %w", period.End, err)
	}
	return schedule.Interval{Start: start, End: end}, nil
}

// toEventRecord converts a Google Calendar event to a schedule.EventRecord.
// The provider's raw time literals are always preserved; parsed times stay
// zero when the literals are missing or unparseable, which the resolver
// reports as a degraded result instead of dropping the match.
func toEventRecord(event *calendar.Event) schedule.EventRecord {
	record := schedule.EventRecord{
		ID:          event.Id,
		Title:       event.Summary,
		Description: event.Description,
	}

	if event.Start != nil {
		record.RawStart = rawEventTime(event.Start)
		record.Start = parseEventTime(event.Start)
	}
	if event.End != nil {
		record.RawEnd = rawEventTime(event.End)
		record.End = parseEventTime(event.End)
	}

	for _, att := range event.Attendees {
		if att.Email != "" {
			record.Attendees = append(record.Attendees, att.Email)
		}
	}

	return record
}

// rawEventTime returns the provider's literal for an event boundary,
// whichever of DateTime or Date is populated.
func rawEventTime(edt *calendar.EventDateTime) string {
	if edt.DateTime != "" {
		return edt.DateTime
	}
	return edt.Date
}

// parseEventTime parses an event boundary. Timed events carry RFC3339
// literals; all-day events carry bare dates. Returns the zero time when
// neither parses.
func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
		return time.Time{}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// fromEventDraft builds the provider event payload from a schedule.EventDraft.
func fromEventDraft(draft schedule.EventDraft) *calendar.Event {
	event := &calendar.Event{
		Summary:     draft.Title,
		Description: draft.Description,
		Start: &calendar.EventDateTime{
			DateTime: draft.Start.Format(time.RFC3339),
			TimeZone: draft.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: draft.End.Format(time.RFC3339),
			TimeZone: draft.TimeZone,
		},
	}

	for _, email := range draft.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{
			Email: email,
		})
	}

	return event
}
