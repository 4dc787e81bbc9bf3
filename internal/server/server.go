// Package server wires all MCP components and creates the server
// instance. This is the composition root: it loads configuration,
// builds the Toggl client and session, and registers every tool and
// prompt. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kweston/toggl-track-mcp/internal/config"
	"github.com/kweston/toggl-track-mcp/internal/prompts"
	"github.com/kweston/toggl-track-mcp/internal/session"
	"github.com/kweston/toggl-track-mcp/internal/toggl"
	"github.com/kweston/toggl-track-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools and
// prompts registered. A missing API token fails here, at startup,
// with a clear diagnostic rather than on the first tool call.
func New() (*server.MCPServer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// stdout belongs to the MCP stdio transport; everything we log
	// goes to stderr.
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "toggl-mcp",
	})

	client := toggl.NewClient(cfg.BaseURL, cfg.APIToken, cfg.HTTPTimeout(), logger)
	sess := session.New(client)

	s := server.NewMCPServer(
		"toggl-track-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	registerTools(s, sess)

	for _, p := range prompts.All() {
		s.AddPrompt(p.Definition(), p.Handle)
	}

	logger.Info("server configured", "base_url", cfg.BaseURL, "version", Version)

	return s, nil
}

// registerTools wires every tool against the shared session.
func registerTools(s *server.MCPServer, sess *session.Session) {
	projectsTool := tools.NewProjectsTool(sess)
	s.AddTool(projectsTool.Definition(), projectsTool.Handle)

	workspacesTool := tools.NewWorkspacesTool(sess)
	s.AddTool(workspacesTool.Definition(), workspacesTool.Handle)

	entriesTool := tools.NewTimeEntriesTool(sess)
	s.AddTool(entriesTool.Definition(), entriesTool.Handle)

	summaryTool := tools.NewTimeSummaryTool(sess)
	s.AddTool(summaryTool.Definition(), summaryTool.Handle)

	currentTimerTool := tools.NewCurrentTimerTool(sess)
	s.AddTool(currentTimerTool.Definition(), currentTimerTool.Handle)

	startTimerTool := tools.NewStartTimerTool(sess)
	s.AddTool(startTimerTool.Definition(), startTimerTool.Handle)

	stopTimerTool := tools.NewStopTimerTool(sess)
	s.AddTool(stopTimerTool.Definition(), stopTimerTool.Handle)

	searchTool := tools.NewSearchTool(sess)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	projectTasksTool := tools.NewProjectTasksTool(sess)
	s.AddTool(projectTasksTool.Definition(), projectTasksTool.Handle)

	createTaskTool := tools.NewCreateTaskTool(sess)
	s.AddTool(createTaskTool.Definition(), createTaskTool.Handle)

	allTasksTool := tools.NewAllTasksTool(sess)
	s.AddTool(allTasksTool.Definition(), allTasksTool.Handle)
}

// serverInstructions tells the AI what the server is for and how to
// use its tools well.
func serverInstructions() string {
	return `You have access to a Toggl Track time-tracking server.

## What it does

Tools read and write the user's Toggl Track account: list projects and
workspaces, browse and search time entries, summarize time by project,
and start/stop the running timer. All tool output is formatted text.

## Usage notes

- Dates are calendar dates in YYYY-MM-DD format. Ranges are inclusive.
  When omitted, entry listings default to the last 7 days and search
  defaults to the last 30 days.
- Project names are matched case-insensitively; an exact match wins
  over a substring match. If a name doesn't resolve, the tool replies
  with the list of valid project names — show it to the user instead
  of retrying blindly.
- "No timer running", "no entries found", and "no matches" responses
  are normal outcomes, not errors.
- Starting a timer while another is running makes Toggl stop the old
  one automatically; mention this to the user when relevant.
- The Toggl API is rate limited to roughly one request per second.
  Avoid issuing long bursts of tool calls in a row.`
}
