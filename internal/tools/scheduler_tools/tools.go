package scheduler_tools

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/miavoice/scheduler-mcp/internal/calendar"
	"github.com/miavoice/scheduler-mcp/internal/google"
	"github.com/miavoice/scheduler-mcp/internal/schedule"
	"github.com/miavoice/scheduler-mcp/internal/server"
)

// Display layouts for conversational output.
const (
	layoutDate        = "Monday, January 02"
	layoutTime        = "03:04 PM"
	layoutDateAtTime  = "Monday, January 02 at 03:04 PM"
	layoutFullStamp   = "Monday, January 02, 2006 at 03:04 PM"
	layoutCurrentTime = "Monday, January 02, 2006 at 03:04 PM MST"
)

// getEngine retrieves or creates the scheduling engine for the specified account
func getEngine(ctx context.Context, account string, sc *server.ServerContext) (*schedule.Engine, error) {
	engine := sc.EngineForAccount(account)
	if engine == nil {
		// No credentials of any kind (service account or stored token):
		// point the caller at the OAuth onboarding flow.
		if !calendar.HasTokenForAccount(account) {
			authURL := google.GetAuthURL()
			return nil, fmt.Errorf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Calendar
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, authURL, account)
		}

		client, err := calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
		engine = sc.EngineForAccount(account)
	}
	return engine, nil
}

// errorText converts an engine fault into a conversational error message.
// Gateway faults carry the provider-supplied reason; parse faults are
// surfaced verbatim so the caller can correct the input.
func errorText(err error) string {
	switch schedule.Classify(err) {
	case schedule.KindParse:
		return err.Error()
	case schedule.KindGateway:
		return fmt.Sprintf("Calendar API error: %v", err)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

// RegisterSchedulerTools registers all scheduling tools with the MCP server
func RegisterSchedulerTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register slot search and availability tools
	if err := RegisterSlotTools(s, sc); err != nil {
		return fmt.Errorf("failed to register slot tools: %w", err)
	}

	// Register event lookup and creation tools
	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	// Register time tools
	if err := RegisterTimeTools(s, sc); err != nil {
		return fmt.Errorf("failed to register time tools: %w", err)
	}

	return nil
}
