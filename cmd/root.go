package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the scheduler-mcp application
var rootCmd = &cobra.Command{
	Use:   "scheduler-mcp",
	Short: "Calendar availability and scheduling engine for AI assistants",
	Long: `scheduler-mcp is an MCP (Model Context Protocol) server that gives AI
assistants calendar scheduling capabilities backed by Google Calendar:
finding available time slots, checking whether a proposed time is free,
resolving events by name, and creating events.

It can run over stdio (default) or as a streamable HTTP server.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "scheduler-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
