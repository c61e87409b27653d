package main

import (
	"github.com/joho/godotenv"

	"github.com/miavoice/scheduler-mcp/cmd"
)

// version will be set by goreleaser during build
var version = "dev"

func main() {
	// Load optional .env file; missing files are fine.
	_ = godotenv.Load()

	// Set the version from build-time variable
	cmd.SetVersion(version)

	// Execute the root command
	cmd.Execute()
}
