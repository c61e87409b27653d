package scheduler_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/miavoice/scheduler-mcp/internal/server"
	"github.com/miavoice/scheduler-mcp/internal/tools/common"
)

// RegisterTimeTools registers time tools with the MCP server
func RegisterTimeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Current time tool
	currentTimeTool := mcp.NewTool("scheduler_get_current_time",
		mcp.WithDescription("Get the current date and time in the configured timezone. Use this to anchor relative references like 'tomorrow', 'next week', or 'this Friday'."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(currentTimeTool, common.InstrumentedToolHandler(
		"scheduler_get_current_time", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetCurrentTime(ctx, request, sc)
		}))

	return nil
}

func handleGetCurrentTime(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	engine, err := getEngine(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	now := engine.CurrentTime()
	return mcp.NewToolResultText(fmt.Sprintf("Current date and time: %s", now.Format(layoutCurrentTime))), nil
}
