package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/session"
)

// CurrentTimerTool handles the get_current_timer MCP tool.
type CurrentTimerTool struct {
	session *session.Session
}

// NewCurrentTimerTool creates a CurrentTimerTool backed by the given session.
func NewCurrentTimerTool(s *session.Session) *CurrentTimerTool {
	return &CurrentTimerTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CurrentTimerTool) Definition() mcp.Tool {
	return mcp.NewTool("get_current_timer",
		mcp.WithDescription(
			"Get information about the currently running timer, if any. "+
				"Returns details about the active time entry or indicates no timer is running.",
		),
	)
}

// Handle processes the get_current_timer tool call. When no timer is
// running this makes exactly one outbound call.
func (t *CurrentTimerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entry, err := t.session.Client().CurrentTimeEntry(ctx)
	if err != nil {
		return clientError("fetching current timer", err), nil
	}
	if entry == nil {
		return mcp.NewToolResultText("No timer is currently running."), nil
	}

	projectName := "No project"
	if entry.ProjectID != nil {
		projects, err := t.session.Projects(ctx)
		if err != nil {
			return clientError("fetching projects", err), nil
		}
		projectName = displayProject(entry.ProjectID, projectNameIndex(projects))
	}

	elapsed := int64(time.Since(entry.Start).Seconds())

	var sb strings.Builder
	sb.WriteString("**Currently Running Timer:**\n\n")
	fmt.Fprintf(&sb, "• **Project**: %s\n", projectName)
	fmt.Fprintf(&sb, "• **Description**: %s\n", displayDescription(entry.Description))
	fmt.Fprintf(&sb, "• **Duration**: %s\n", formatDuration(elapsed))
	fmt.Fprintf(&sb, "• **Started**: %s\n", formatClock(entry.Start))

	return mcp.NewToolResultText(sb.String()), nil
}

// StartTimerTool handles the start_timer MCP tool.
type StartTimerTool struct {
	session *session.Session
}

// NewStartTimerTool creates a StartTimerTool backed by the given session.
func NewStartTimerTool(s *session.Session) *StartTimerTool {
	return &StartTimerTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *StartTimerTool) Definition() mcp.Tool {
	return mcp.NewTool("start_timer",
		mcp.WithDescription(
			"Start a new timer in Toggl Track. If another timer is already "+
				"running, Toggl stops it automatically. "+
				"Returns confirmation of timer start with details.",
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Description for the time entry"),
		),
		mcp.WithString("project_name",
			mcp.Description("Name of the project to assign the timer to (optional, case-insensitive)"),
		),
	)
}

// Handle processes the start_timer tool call. The project name is
// resolved before any write: an unresolvable name means no call to
// the API, just guidance.
func (t *StartTimerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description is required"), nil
	}
	projectName := req.GetString("project_name", "")

	workspace, err := t.session.Workspace(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoWorkspaces) {
			return mcp.NewToolResultText("No workspaces found. Cannot start timer."), nil
		}
		return clientError("resolving workspace", err), nil
	}

	var projectID *int64
	resolvedName := "No project"
	if projectName != "" {
		match, projects, err := t.session.ResolveProject(ctx, projectName)
		if err != nil {
			return clientError("fetching projects", err), nil
		}
		if match == nil {
			return projectGuidance(projectName, projects), nil
		}
		projectID = &match.ID
		resolvedName = match.Name
	}

	entry, err := t.session.Client().StartTimeEntry(ctx, workspace.ID, description, projectID)
	if err != nil {
		return clientError("starting timer", err), nil
	}

	var sb strings.Builder
	sb.WriteString("**Timer Started Successfully!**\n\n")
	fmt.Fprintf(&sb, "• **Description**: %s\n", displayDescription(entry.Description))
	fmt.Fprintf(&sb, "• **Project**: %s\n", resolvedName)
	fmt.Fprintf(&sb, "• **Workspace**: %s\n", workspace.Name)
	fmt.Fprintf(&sb, "• **Started**: %s\n", formatClock(entry.Start))
	fmt.Fprintf(&sb, "• **Timer ID**: %d\n", entry.ID)

	return mcp.NewToolResultText(sb.String()), nil
}

// StopTimerTool handles the stop_current_timer MCP tool.
type StopTimerTool struct {
	session *session.Session
}

// NewStopTimerTool creates a StopTimerTool backed by the given session.
func NewStopTimerTool(s *session.Session) *StopTimerTool {
	return &StopTimerTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *StopTimerTool) Definition() mcp.Tool {
	return mcp.NewTool("stop_current_timer",
		mcp.WithDescription(
			"Stop the currently running timer in Toggl Track. "+
				"Returns confirmation of timer stop with duration details.",
		),
	)
}

// Handle processes the stop_current_timer tool call.
func (t *StopTimerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current, err := t.session.Client().CurrentTimeEntry(ctx)
	if err != nil {
		return clientError("fetching current timer", err), nil
	}
	if current == nil {
		return mcp.NewToolResultText("No timer is currently running."), nil
	}

	stopped, err := t.session.Client().StopTimeEntry(ctx, current.WorkspaceID, current.ID)
	if err != nil {
		return clientError("stopping timer", err), nil
	}

	projectName := "No project"
	if current.ProjectID != nil {
		projects, err := t.session.Projects(ctx)
		if err != nil {
			return clientError("fetching projects", err), nil
		}
		projectName = displayProject(current.ProjectID, projectNameIndex(projects))
	}

	duration := stopped.Duration
	if duration <= 0 && stopped.Stop != nil {
		duration = int64(stopped.Stop.Sub(stopped.Start).Seconds())
	}

	stoppedAt := "Unknown"
	if stopped.Stop != nil {
		stoppedAt = formatClock(*stopped.Stop)
	}

	var sb strings.Builder
	sb.WriteString("**Timer Stopped Successfully!**\n\n")
	fmt.Fprintf(&sb, "• **Description**: %s\n", displayDescription(current.Description))
	fmt.Fprintf(&sb, "• **Project**: %s\n", projectName)
	fmt.Fprintf(&sb, "• **Duration**: %s\n", formatDuration(duration))
	fmt.Fprintf(&sb, "• **Started**: %s\n", formatClock(stopped.Start))
	fmt.Fprintf(&sb, "• **Stopped**: %s\n", stoppedAt)

	return mcp.NewToolResultText(sb.String()), nil
}
