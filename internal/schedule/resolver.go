package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/miavoice/scheduler-mcp/internal/logging"
)

const (
	// resolveHorizonDays bounds how far into the future a keyword lookup
	// searches.
	resolveHorizonDays = 180

	// resolveMaxResults bounds the match list fetched from the provider.
	resolveMaxResults = 50
)

// ResolvedEvent is the outcome of a keyword lookup. Found is false when
// nothing in the horizon matched — a normal result, not an error. When
// several events match, the earliest-starting one is resolved and
// MatchCount reports how many there were. A Degraded result means the
// matched record's time fields could not be parsed; Title, RawStart and
// RawEnd carry the provider's literals so the caller can decide whether
// to proceed.
type ResolvedEvent struct {
	Found           bool
	Degraded        bool
	ID              string
	Title           string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	MatchCount      int
	RawStart        string
	RawEnd          string
}

// ResolveEvent searches the next 180 days for events matching the keyword
// (matching is the provider's native text search) and resolves to the
// earliest-starting match. The ordering guarantee of Gateway.ListEvents
// makes the first record the earliest, a deterministic tie-break when the
// keyword is ambiguous.
func (e *Engine) ResolveEvent(ctx context.Context, keyword string) (*ResolvedEvent, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, parseError("event name must not be empty")
	}

	now := e.now().In(e.cfg.TimeZone)
	horizon := now.AddDate(0, 0, resolveHorizonDays)

	records, err := e.gw.ListEvents(ctx, e.cfg.CalendarID, now, horizon, keyword, resolveMaxResults)
	if err != nil {
		return nil, gatewayError("event search failed", err)
	}
	if len(records) == 0 {
		return &ResolvedEvent{Found: false}, nil
	}

	first := records[0]
	resolved := &ResolvedEvent{
		Found:      true,
		ID:         first.ID,
		Title:      first.Title,
		MatchCount: len(records),
		RawStart:   first.RawStart,
		RawEnd:     first.RawEnd,
	}
	if first.Start.IsZero() || first.End.IsZero() {
		// The record matched but its times are unusable; report what we
		// have instead of failing the lookup.
		resolved.Degraded = true
		e.logger.Warn("resolved event has unparseable times",
			logging.Operation("find_event_by_name"),
			"raw_start", first.RawStart,
			"raw_end", first.RawEnd)
		return resolved, nil
	}

	resolved.Start = first.Start
	resolved.End = first.End
	resolved.DurationMinutes = int(first.End.Sub(first.Start).Minutes())
	return resolved, nil
}
