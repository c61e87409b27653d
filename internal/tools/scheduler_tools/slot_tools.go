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

// RegisterSlotTools registers slot search and availability tools with the MCP server
func RegisterSlotTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find available slots tool
	findSlotsTool := mcp.NewTool("scheduler_find_available_slots",
		mcp.WithDescription("Find available time slots for a meeting within a date range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Length of the meeting in minutes (e.g., 30, 60, 90)"),
		),
		mcp.WithString("startDate",
			mcp.Required(),
			mcp.Description("Start of search range in YYYY-MM-DD format"),
		),
		mcp.WithString("endDate",
			mcp.Required(),
			mcp.Description("End of search range in YYYY-MM-DD format"),
		),
		mcp.WithString("timePreference",
			mcp.Description("One of 'morning' (8AM-12PM), 'afternoon' (12PM-5PM), 'evening' (5PM-8PM), or 'anytime' (8AM-6PM)"),
		),
	)

	s.AddTool(findSlotsTool, common.InstrumentedToolHandlerWithOperation(
		"scheduler_find_available_slots", instrumentation.OperationFreeBusy, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindAvailableSlots(ctx, request, sc)
		}))

	// Check specific time availability tool
	checkAvailabilityTool := mcp.NewTool("scheduler_check_availability",
		mcp.WithDescription("Check if a specific time slot is available. Use when the user requests a specific time like 'tomorrow at 2 PM'."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startDateTime",
			mcp.Required(),
			mcp.Description("Proposed start time in YYYY-MM-DD HH:MM format"),
		),
		mcp.WithString("endDateTime",
			mcp.Required(),
			mcp.Description("Proposed end time in YYYY-MM-DD HH:MM format"),
		),
	)

	s.AddTool(checkAvailabilityTool, common.InstrumentedToolHandlerWithOperation(
		"scheduler_check_availability", instrumentation.OperationFreeBusy, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCheckAvailability(ctx, request, sc)
		}))

	return nil
}

func handleFindAvailableSlots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	durationMinutes, ok := args["durationMinutes"].(float64)
	if !ok || durationMinutes <= 0 {
		return mcp.NewToolResultError("durationMinutes is required and must be positive"), nil
	}

	startDate, ok := args["startDate"].(string)
	if !ok || startDate == "" {
		return mcp.NewToolResultError("startDate is required"), nil
	}

	endDate, ok := args["endDate"].(string)
	if !ok || endDate == "" {
		return mcp.NewToolResultError("endDate is required"), nil
	}

	preference := schedule.Anytime
	if prefVal, ok := args["timePreference"].(string); ok && prefVal != "" {
		preference = schedule.Preference(prefVal)
	}

	engine, err := getEngine(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := engine.FindAvailableSlots(ctx, schedule.SlotRequest{
		DurationMinutes: int(durationMinutes),
		StartDate:       startDate,
		EndDate:         endDate,
		Preference:      preference,
	})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	return mcp.NewToolResultText(formatSlotResult(result, startDate, endDate, int(durationMinutes))), nil
}

func formatSlotResult(result *schedule.ScanResult, startDate, endDate string, durationMinutes int) string {
	if result.Total == 0 {
		return fmt.Sprintf("No available slots found between %s and %s for a %d-minute meeting. Try expanding the date range or adjusting the time preference.",
			startDate, endDate, durationMinutes)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d available slots. Here are the best options:\n", result.Total)
	for i, slot := range result.Slots {
		fmt.Fprintf(&sb, "%d. %s at %s\n", i+1, slot.Start.Format(layoutDate), slot.Start.Format(layoutTime))
	}
	if more := result.More(); more > 0 {
		fmt.Fprintf(&sb, "\n...and %d more slots available.", more)
	}
	return sb.String()
}

func handleCheckAvailability(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	startDateTime, ok := args["startDateTime"].(string)
	if !ok || startDateTime == "" {
		return mcp.NewToolResultError("startDateTime is required"), nil
	}

	endDateTime, ok := args["endDateTime"].(string)
	if !ok || endDateTime == "" {
		return mcp.NewToolResultError("endDateTime is required"), nil
	}

	engine, err := getEngine(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	verdict, err := engine.CheckAvailability(ctx, startDateTime, endDateTime)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	return mcp.NewToolResultText(formatVerdict(verdict)), nil
}

func formatVerdict(verdict *schedule.Verdict) string {
	startFormatted := verdict.Proposed.Start.Format(layoutDateAtTime)
	endFormatted := verdict.Proposed.End.Format(layoutTime)

	if verdict.Available {
		return fmt.Sprintf("The time slot %s to %s is available!", startFormatted, endFormatted)
	}

	conflicts := make([]string, 0, len(verdict.Conflicts))
	for _, c := range verdict.Conflicts {
		conflicts = append(conflicts, fmt.Sprintf("%s - %s", c.Start.Format(layoutTime), c.End.Format(layoutTime)))
	}
	return fmt.Sprintf("The time slot %s to %s is NOT available. Conflicts: %s",
		startFormatted, endFormatted, strings.Join(conflicts, ", "))
}
