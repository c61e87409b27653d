package schedule

import (
	"time"
)

// dateTimeLayouts are the accepted literal shapes, tried in priority order.
// The RFC 3339 attempt comes first so that literals carrying their own
// offset keep it; the remaining layouts are naive and get bound to the
// default timezone.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime normalizes a date/time literal into an instant with a
// resolved offset. Date-only literals default to midnight in loc. Fails
// with a parse-kind *Error when no accepted shape matches.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, parseError("could not parse date/time %q", value)
}

// FormatDateTime renders an instant in the engine's canonical literal
// shape. ParseDateTime(FormatDateTime(t), t.Location()) round-trips.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

// endOfDay widens an instant to 23:59:59 of its calendar day, so a
// same-day search range covers the whole day.
func endOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, 0, loc)
}
