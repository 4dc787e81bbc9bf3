package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/session"
)

// ProjectsTool handles the get_projects MCP tool.
type ProjectsTool struct {
	session *session.Session
}

// NewProjectsTool creates a ProjectsTool backed by the given session.
func NewProjectsTool(s *session.Session) *ProjectsTool {
	return &ProjectsTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_projects",
		mcp.WithDescription(
			"Get all projects from Toggl Track. "+
				"Returns a formatted list of projects with their details.",
		),
	)
}

// Handle processes the get_projects tool call.
func (t *ProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := t.session.Projects(ctx)
	if err != nil {
		return clientError("fetching projects", err), nil
	}

	if len(projects) == 0 {
		return mcp.NewToolResultText("No projects found in your Toggl Track account."), nil
	}

	var sb strings.Builder
	sb.WriteString("Your Toggl Track Projects:\n\n")
	for _, p := range projects {
		status := "Active"
		if !p.Active {
			status = "Archived"
		}
		private := "No"
		if p.Private {
			private = "Yes"
		}
		client := "No client"
		if p.ClientID != nil {
			client = fmt.Sprintf("Client ID %d", *p.ClientID)
		}

		fmt.Fprintf(&sb, "• **%s**\n", p.Name)
		fmt.Fprintf(&sb, "  - Workspace ID: %d\n", p.WorkspaceID)
		fmt.Fprintf(&sb, "  - Client: %s\n", client)
		fmt.Fprintf(&sb, "  - Color: %s\n", p.Color)
		fmt.Fprintf(&sb, "  - Status: %s\n", status)
		fmt.Fprintf(&sb, "  - Private: %s\n\n", private)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// WorkspacesTool handles the get_workspaces MCP tool.
type WorkspacesTool struct {
	session *session.Session
}

// NewWorkspacesTool creates a WorkspacesTool backed by the given session.
func NewWorkspacesTool(s *session.Session) *WorkspacesTool {
	return &WorkspacesTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *WorkspacesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_workspaces",
		mcp.WithDescription(
			"Get all workspaces from Toggl Track. "+
				"Returns a formatted list of workspaces with their details.",
		),
	)
}

// Handle processes the get_workspaces tool call.
func (t *WorkspacesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workspaces, err := t.session.Client().ListWorkspaces(ctx)
	if err != nil {
		return clientError("fetching workspaces", err), nil
	}

	if len(workspaces) == 0 {
		return mcp.NewToolResultText("No workspaces found in your Toggl Track account."), nil
	}

	var sb strings.Builder
	sb.WriteString("Your Toggl Track Workspaces:\n\n")
	for _, ws := range workspaces {
		fmt.Fprintf(&sb, "• **%s** (ID: %d)\n", ws.Name, ws.ID)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
