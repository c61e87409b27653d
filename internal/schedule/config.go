package schedule

import (
	"fmt"
	"time"
)

// Config holds the external configuration of an engine: which calendar
// identity to operate on and which zone naive date/time literals are bound
// to. It is immutable once constructed and passed explicitly into every
// operation via the Engine; there is no ambient global state.
type Config struct {
	// CalendarID is the provider-side calendar identity, e.g. "primary"
	// or an email address.
	CalendarID string

	// TimeZone is the default zone applied to date/time literals that
	// carry no offset of their own.
	TimeZone *time.Location
}

// NewConfig builds a Config, resolving the timezone name. Empty values
// fall back to the "primary" calendar and UTC.
func NewConfig(calendarID, timeZone string) (Config, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	if timeZone == "" {
		timeZone = "UTC"
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return Config{}, fmt.Errorf("unknown timezone %q: %w", timeZone, err)
	}
	return Config{CalendarID: calendarID, TimeZone: loc}, nil
}
