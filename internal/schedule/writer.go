package schedule

import (
	"context"
	"strings"

	"github.com/miavoice/scheduler-mcp/internal/logging"
)

// CreateRequest carries the caller-supplied description of a new event.
// Attendees is a comma-separated list of email addresses; blank entries
// are dropped.
type CreateRequest struct {
	Title         string
	StartDateTime string
	EndDateTime   string
	Description   string
	Attendees     string
}

// CreateEvent validates the request, builds an event draft and submits it
// through the gateway. It returns the provider-assigned identifier on
// success. Remote rejections come back as gateway-kind errors carrying the
// provider's reason; they are reported, never swallowed.
func (e *Engine) CreateEvent(ctx context.Context, req CreateRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", parseError("event title must not be empty")
	}
	start, err := ParseDateTime(req.StartDateTime, e.cfg.TimeZone)
	if err != nil {
		return "", err
	}
	end, err := ParseDateTime(req.EndDateTime, e.cfg.TimeZone)
	if err != nil {
		return "", err
	}
	if !start.Before(end) {
		return "", parseError("start %s must be before end %s", FormatDateTime(start), FormatDateTime(end))
	}

	draft := EventDraft{
		Title:       title,
		Start:       start,
		End:         end,
		TimeZone:    e.cfg.TimeZone.String(),
		Description: req.Description,
		Attendees:   SplitAttendees(req.Attendees),
	}

	id, err := e.gw.InsertEvent(ctx, e.cfg.CalendarID, draft)
	if err != nil {
		return "", gatewayError("event insert rejected", err)
	}

	e.logger.Info("event created",
		logging.Operation("create_event"),
		"event_id", id,
		"start", FormatDateTime(start))
	return id, nil
}

// SplitAttendees splits a comma-separated attendee list, trimming
// whitespace and dropping blank entries. Returns nil when nothing remains.
func SplitAttendees(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	attendees := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			attendees = append(attendees, p)
		}
	}
	if len(attendees) == 0 {
		return nil
	}
	return attendees
}
