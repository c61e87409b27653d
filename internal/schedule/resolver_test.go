package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEvent_EarliestMatchWins(t *testing.T) {
	// Two matches on different days; the gateway returns them ordered by
	// start time, so the first is the earliest.
	gw := &fakeGateway{events: []EventRecord{
		{
			ID:    "evt-1",
			Title: "Project Alpha sync",
			Start: time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 11, 5, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:    "evt-2",
			Title: "Project Alpha retro",
			Start: time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 11, 12, 10, 30, 0, 0, time.UTC),
		},
	}}
	e := newTestEngine(gw)

	resolved, err := e.ResolveEvent(context.Background(), "Project Alpha")
	require.NoError(t, err)

	assert.True(t, resolved.Found)
	assert.False(t, resolved.Degraded)
	assert.Equal(t, "evt-1", resolved.ID)
	assert.Equal(t, "Project Alpha sync", resolved.Title)
	assert.Equal(t, 2, resolved.MatchCount)
	assert.Equal(t, 60, resolved.DurationMinutes)
	assert.Equal(t, "Project Alpha", gw.lastQuery)
}

func TestResolveEvent_SearchHorizonIs180Days(t *testing.T) {
	gw := &fakeGateway{}
	e := newTestEngine(gw)

	_, err := e.ResolveEvent(context.Background(), "dentist")
	require.NoError(t, err)

	assert.Equal(t, gw.lastTimeMin.AddDate(0, 0, 180), gw.lastTimeMax)
	assert.Equal(t, int64(resolveMaxResults), gw.lastMax)
}

func TestResolveEvent_NotFound(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	resolved, err := e.ResolveEvent(context.Background(), "dentist")
	require.NoError(t, err, "an empty lookup is a normal result")
	assert.False(t, resolved.Found)
	assert.Zero(t, resolved.MatchCount)
}

func TestResolveEvent_DegradedWhenTimesUnparseable(t *testing.T) {
	gw := &fakeGateway{events: []EventRecord{
		{
			ID:       "evt-9",
			Title:    "Offsite",
			RawStart: "not-a-time",
			RawEnd:   "also-not-a-time",
		},
	}}
	e := newTestEngine(gw)

	resolved, err := e.ResolveEvent(context.Background(), "offsite")
	require.NoError(t, err)

	assert.True(t, resolved.Found)
	assert.True(t, resolved.Degraded)
	assert.Equal(t, "Offsite", resolved.Title)
	assert.Equal(t, "not-a-time", resolved.RawStart)
	assert.Equal(t, "also-not-a-time", resolved.RawEnd)
	assert.True(t, resolved.Start.IsZero())
}

func TestResolveEvent_EmptyKeyword(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	_, err := e.ResolveEvent(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, KindParse, Classify(err))
}

func TestResolveEvent_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{listErr: errors.New("quota exceeded")}
	e := newTestEngine(gw)

	_, err := e.ResolveEvent(context.Background(), "dentist")
	require.Error(t, err)

	var schedErr *Error
	require.True(t, errors.As(err, &schedErr))
	assert.Equal(t, KindGateway, schedErr.Kind)
	assert.ErrorContains(t, err, "quota exceeded")
}
