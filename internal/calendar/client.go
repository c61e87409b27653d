package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/miavoice/scheduler-mcp/internal/google"
	"github.com/miavoice/scheduler-mcp/internal/instrumentation"
	"github.com/miavoice/scheduler-mcp/internal/schedule"
)

// Client wraps the Google Calendar service and implements schedule.Gateway.
type Client struct {
	svc           *calendar.Service
	account       string // The account this client is associated with
	tokenProvider google.TokenProvider
	metrics       *instrumentation.Metrics
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// SetMetrics attaches a metrics recorder. Gateway round trips are recorded
// when one is set; a nil recorder disables recording.
func (c *Client) SetMetrics(m *instrumentation.Metrics) {
	c.metrics = m
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2
// authentication for a specific account. The OAuth token is retrieved from
// the provided token provider.
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	tokenSource := oauth2.StaticTokenSource(token)
	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication
// for a specific account, using the default file-based token provider.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// QueryFreeBusy fetches the busy intervals of a calendar within a time range.
// Implements schedule.Gateway.
func (c *Client) QueryFreeBusy(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]schedule.Interval, error) {
	ctx, span := instrumentation.StartCalendarSpan(ctx, calendarID, instrumentation.OperationFreeBusy)
	defer span.End()
	start := time.Now()

	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items: []*calendar.FreeBusyRequestItem{
			{Id: calendarID},
		},
	}

	result, err := c.svc.Freebusy.Query(query).Context(ctx).Do()
	c.record(ctx, instrumentation.OperationFreeBusy, err, time.Since(start))
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	var busy []schedule.Interval
	for _, cal := range result.Calendars {
		for _, e := range cal.Errors {
			instrumentation.AddSpanEvent(span, "freebusy_calendar_error")
			return nil, fmt.Errorf("freebusy query rejected for %s: %s", calendarID, e.Reason)
		}
		for _, b := range cal.Busy {
			iv, err := busyInterval(b)
			if err != nil {
				return nil, err
			}
			busy = append(busy, iv)
		}
	}

	instrumentation.SetSpanSuccess(span)
	return busy, nil
}

// ListEvents lists events in a calendar within a time range, ordered by
// start time, optionally filtered by the provider's text search.
// Implements schedule.Gateway.
func (c *Client) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time, query string, maxResults int64) ([]schedule.EventRecord, error) {
	ctx, span := instrumentation.StartCalendarSpan(ctx, calendarID, instrumentation.OperationEventsList)
	defer span.End()
	start := time.Now()

	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	if query != "" {
		call = call.Q(query)
	}
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	events, err := call.Do()
	c.record(ctx, instrumentation.OperationEventsList, err, time.Since(start))
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var records []schedule.EventRecord
	for _, event := range events.Items {
		records = append(records, toEventRecord(event))
	}

	instrumentation.SetSpanSuccess(span)
	return records, nil
}

// InsertEvent creates a new calendar event from the draft and returns the
// provider-assigned event identifier. Implements schedule.Gateway.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, draft schedule.EventDraft) (string, error) {
	ctx, span := instrumentation.StartCalendarSpan(ctx, calendarID, instrumentation.OperationEventsInsert)
	defer span.End()
	start := time.Now()

	created, err := c.svc.Events.Insert(calendarID, fromEventDraft(draft)).Context(ctx).Do()
	c.record(ctx, instrumentation.OperationEventsInsert, err, time.Since(start))
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	instrumentation.SetSpanSuccess(span)
	return created.Id, nil
}

// record reports one gateway round trip to the metrics recorder, if any.
func (c *Client) record(ctx context.Context, operation string, err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	c.metrics.RecordCalendarOperation(ctx, operation, status, elapsed)
}
