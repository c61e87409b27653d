package schedule

import (
	"context"
	"time"
)

// fakeGateway is an in-memory Gateway for engine tests. It records the
// arguments of the last call so tests can assert on query shape.
type fakeGateway struct {
	busy      []Interval
	busyErr   error
	events    []EventRecord
	listErr   error
	insertID  string
	insertErr error

	freeBusyCalls int
	lastTimeMin   time.Time
	lastTimeMax   time.Time
	lastQuery     string
	lastMax       int64
	lastDraft     EventDraft
}

func (f *fakeGateway) QueryFreeBusy(_ context.Context, _ string, timeMin, timeMax time.Time) ([]Interval, error) {
	f.freeBusyCalls++
	f.lastTimeMin = timeMin
	f.lastTimeMax = timeMax
	if f.busyErr != nil {
		return nil, f.busyErr
	}
	return f.busy, nil
}

func (f *fakeGateway) ListEvents(_ context.Context, _ string, timeMin, timeMax time.Time, query string, maxResults int64) ([]EventRecord, error) {
	f.lastTimeMin = timeMin
	f.lastTimeMax = timeMax
	f.lastQuery = query
	f.lastMax = maxResults
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeGateway) InsertEvent(_ context.Context, _ string, draft EventDraft) (string, error) {
	f.lastDraft = draft
	if f.insertErr != nil {
		return "", f.insertErr
	}
	return f.insertID, nil
}

// newTestEngine wires a fake gateway into a UTC engine with a pinned clock.
func newTestEngine(gw *fakeGateway) *Engine {
	e := NewEngine(gw, Config{CalendarID: "primary", TimeZone: time.UTC}, nil)
	e.now = func() time.Time {
		return time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	}
	return e
}

func mustInterval(start, end string) Interval {
	s, err := ParseDateTime(start, time.UTC)
	if err != nil {
		panic(err)
	}
	e, err := ParseDateTime(end, time.UTC)
	if err != nil {
		panic(err)
	}
	return Interval{Start: s, End: e}
}
