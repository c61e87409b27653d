package scheduler_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/miavoice/scheduler-mcp/internal/instrumentation"
	"github.com/miavoice/scheduler-mcp/internal/schedule"
	"github.com/miavoice/scheduler-mcp/internal/server"
	"github.com/miavoice/scheduler-mcp/internal/tools/common"
)

// RegisterEventTools registers event lookup and creation tools with the MCP server
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find event by name tool
	findEventTool := mcp.NewTool("scheduler_find_event_by_name",
		mcp.WithDescription("Find an existing calendar event by name or keyword. Searches the next 180 days and resolves to the earliest match."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("eventName",
			mcp.Required(),
			mcp.Description("Name or keyword of the event to look up (e.g., 'dentist', 'project sync')"),
		),
	)

	s.AddTool(findEventTool, common.InstrumentedToolHandlerWithOperation(
		"scheduler_find_event_by_name", instrumentation.OperationEventsList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindEventByName(ctx, request, sc)
		}))

	// Get events tool
	getEventsTool := mcp.NewTool("scheduler_get_events",
		mcp.WithDescription("Get existing calendar events within a date range. Use when the user references existing meetings or wants to see their schedule."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startDate",
			mcp.Required(),
			mcp.Description("Start date in YYYY-MM-DD format"),
		),
		mcp.WithString("endDate",
			mcp.Required(),
			mcp.Description("End date in YYYY-MM-DD format"),
		),
	)

	s.AddTool(getEventsTool, common.InstrumentedToolHandlerWithOperation(
		"scheduler_get_events", instrumentation.OperationEventsList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEvents(ctx, request, sc)
		}))

	// Create event tool
	createEventTool := mcp.NewTool("scheduler_create_event",
		mcp.WithDescription("Create a new calendar event. Only call this after the user confirms the time slot and title."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title or summary of the meeting"),
		),
		mcp.WithString("startDateTime",
			mcp.Required(),
			mcp.Description("Start time in YYYY-MM-DD HH:MM format"),
		),
		mcp.WithString("endDateTime",
			mcp.Required(),
			mcp.Description("End time in YYYY-MM-DD HH:MM format"),
		),
		mcp.WithString("description",
			mcp.Description("Optional meeting description or notes"),
		),
		mcp.WithString("attendees",
			mcp.Description("Optional comma-separated list of attendee email addresses"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandlerWithOperation(
		"scheduler_create_event", instrumentation.OperationEventsInsert, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	return nil
}

func handleFindEventByName(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventName, ok := args["eventName"].(string)
	if !ok || eventName == "" {
		return mcp.NewToolResultError("eventName is required"), nil
	}

	engine, err := getEngine(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolved, err := engine.ResolveEvent(ctx, eventName)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	return mcp.NewToolResultText(formatResolvedEvent(resolved, eventName)), nil
}

func formatResolvedEvent(resolved *schedule.ResolvedEvent, eventName string) string {
	if !resolved.Found {
		return fmt.Sprintf("No event found matching '%s' in the next 180 days.", eventName)
	}

	if resolved.Degraded {
		return fmt.Sprintf("Found '%s' but its scheduled times could not be interpreted (start: %q, end: %q).",
			resolved.Title, resolved.RawStart, resolved.RawEnd)
	}

	result := fmt.Sprintf("Found '%s' on %s from %s to %s (%d minutes).",
		resolved.Title,
		resolved.Start.Format(layoutDate),
		resolved.Start.Format(layoutTime),
		resolved.End.Format(layoutTime),
		resolved.DurationMinutes)
	if resolved.MatchCount > 1 {
		result += fmt.Sprintf(" %d events matched; showing the earliest.", resolved.MatchCount)
	}
	return result
}

func handleGetEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	startDate, ok := args["startDate"].(string)
	if !ok || startDate == "" {
		return mcp.NewToolResultError("startDate is required"), nil
	}

	endDate, ok := args["endDate"].(string)
	if !ok || endDate == "" {
		return mcp.NewToolResultError("endDate is required"), nil
	}

	engine, err := getEngine(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := engine.ListEvents(ctx, startDate, endDate)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	return mcp.NewToolResultText(formatEventList(records, startDate, endDate)), nil
}

func formatEventList(records []schedule.EventRecord, startDate, endDate string) string {
	if len(records) == 0 {
		return fmt.Sprintf("No events found between %s and %s.", startDate, endDate)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d events:\n", len(records))
	for _, rec := range records {
		title := rec.Title
		if title == "" {
			title = "No title"
		}
		// Fall back to the provider's literal when the start time could
		// not be parsed.
		when := rec.RawStart
		if !rec.Start.IsZero() {
			when = rec.Start.Format(layoutDateAtTime)
		}
		fmt.Fprintf(&sb, "- %s: %s\n", title, when)
	}
	return sb.String()
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	startDateTime, ok := args["startDateTime"].(string)
	if !ok || startDateTime == "" {
		return mcp.NewToolResultError("startDateTime is required"), nil
	}

	endDateTime, ok := args["endDateTime"].(string)
	if !ok || endDateTime == "" {
		return mcp.NewToolResultError("endDateTime is required"), nil
	}

	description, _ := args["description"].(string)
	attendees, _ := args["attendees"].(string)

	engine, err := getEngine(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := engine.CreateEvent(ctx, schedule.CreateRequest{
		Title:         title,
		StartDateTime: startDateTime,
		EndDateTime:   endDateTime,
		Description:   description,
		Attendees:     attendees,
	})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	// Re-parse for display; CreateEvent already validated both literals.
	loc := engine.Config().TimeZone
	start, _ := schedule.ParseDateTime(startDateTime, loc)
	end, _ := schedule.ParseDateTime(endDateTime, loc)

	return mcp.NewToolResultText(fmt.Sprintf("Successfully created '%s' on %s to %s. Event ID: %s",
		title, start.Format(layoutFullStamp), end.Format(layoutTime), id)), nil
}
