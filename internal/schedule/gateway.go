package schedule

import (
	"context"
	"time"
)

// Gateway is the remote calendar provider boundary. The engine never
// touches provider storage directly; it reaches the calendar through these
// three primitives. Implementations own their transport, timeout and retry
// policy; the engine issues at most one call per operation and performs no
// retries of its own.
type Gateway interface {
	// QueryFreeBusy returns the busy intervals of one calendar identity
	// over a time range. The result may be empty and may contain
	// overlapping entries.
	QueryFreeBusy(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]Interval, error)

	// ListEvents returns event records in a time range, ordered by start
	// time, optionally filtered by the provider's native text search.
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time, query string, maxResults int64) ([]EventRecord, error)

	// InsertEvent submits a new event and returns the provider-assigned
	// identifier.
	InsertEvent(ctx context.Context, calendarID string, draft EventDraft) (string, error)
}

// EventRecord is an existing calendar event as reported by the gateway.
// RawStart and RawEnd keep the provider's literal time fields so that a
// record whose times could not be parsed can still be surfaced to the
// caller in degraded form.
type EventRecord struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	RawStart    string
	RawEnd      string
	Description string
	Attendees   []string
}

// EventDraft describes a new event to be inserted.
type EventDraft struct {
	Title       string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Description string
	Attendees   []string
}
