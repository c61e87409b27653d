// Package cmd implements the command-line interface for scheduler-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server providing scheduling tools for AI assistants
//   - auth: Authorize Google Calendar access via the OAuth flow
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
