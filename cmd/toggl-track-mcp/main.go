// toggl-track-mcp: Toggl Track MCP Server
//
// An MCP server that exposes the Toggl Track time-tracking API as
// tools and prompt templates for AI assistants (Claude Code, Cursor,
// VS Code Copilot, and any other MCP host).
//
// Usage:
//
//	toggl-track-mcp serve    # Start MCP server (stdio transport)
//	toggl-track-mcp update   # Update to the latest version
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	togglserver "github.com/kweston/toggl-track-mcp/internal/server"
	"github.com/kweston/toggl-track-mcp/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("toggl-track-mcp v%s\n", togglserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, err := togglserver.New()
	if err != nil {
		return err
	}

	// Background version check — prints to stderr so it doesn't
	// interfere with MCP's stdio transport on stdout.
	go checkForUpdates()

	return server.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and prints a
// notice to stderr if an update is available.
func checkForUpdates() {
	result := updater.CheckVersion(togglserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s → v%s\n"+
				"  Run: toggl-track-mcp update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "Checking for updates...\n")

	result := updater.CheckVersion(togglserver.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "New version available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Downloading...\n")

	if err := updater.SelfUpdate(togglserver.Version); err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nYou can download manually from:\n%s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Restart toggl-track-mcp to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `toggl-track-mcp v%s — Toggl Track MCP Server

Usage:
  toggl-track-mcp serve    Start the MCP server (stdio transport)
  toggl-track-mcp update   Update to the latest version

Configuration:
  Set TOGGL_API_TOKEN (from your Toggl Track profile settings), then
  add to your AI tool's MCP config:

  {
    "mcpServers": {
      "toggl-track": {
        "command": "toggl-track-mcp",
        "args": ["serve"],
        "env": { "TOGGL_API_TOKEN": "your-token" }
      }
    }
  }
`, togglserver.Version)
}
