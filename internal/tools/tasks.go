package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/session"
	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

// writeTask renders one task bullet with status and optional estimate.
func writeTask(sb *strings.Builder, task toggl.Task, indent string) {
	status := "Active"
	if !task.Active {
		status = "Inactive"
	}

	fmt.Fprintf(sb, "%s• **%s** (ID: %d)\n", indent, task.Name, task.ID)
	fmt.Fprintf(sb, "%s  - Status: %s\n", indent, status)
	if task.EstimatedSeconds != nil && *task.EstimatedSeconds > 0 {
		fmt.Fprintf(sb, "%s  - Estimated: %s\n", indent, formatDuration(*task.EstimatedSeconds))
	}
}

// ProjectTasksTool handles the get_project_tasks MCP tool.
type ProjectTasksTool struct {
	session *session.Session
}

// NewProjectTasksTool creates a ProjectTasksTool backed by the given session.
func NewProjectTasksTool(s *session.Session) *ProjectTasksTool {
	return &ProjectTasksTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project_tasks",
		mcp.WithDescription(
			"Get all tasks for a specific project. "+
				"Returns a list of tasks with their status and estimates.",
		),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("Name of the project to get tasks for (case-insensitive)"),
		),
	)
}

// Handle processes the get_project_tasks tool call.
func (t *ProjectTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectName, err := req.RequireString("project_name")
	if err != nil {
		return mcp.NewToolResultError("project_name is required"), nil
	}

	project, projects, err := t.session.ResolveProject(ctx, projectName)
	if err != nil {
		return clientError("fetching projects", err), nil
	}
	if project == nil {
		return projectGuidance(projectName, projects), nil
	}

	tasks, err := t.session.Client().ListTasks(ctx, project.WorkspaceID, project.ID)
	if err != nil {
		return clientError("fetching tasks", err), nil
	}

	if len(tasks) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No tasks found for project %q.", project.Name)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tasks for project %q:\n\n", project.Name)
	for _, task := range tasks {
		writeTask(&sb, task, "")
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// CreateTaskTool handles the create_project_task MCP tool.
type CreateTaskTool struct {
	session *session.Session
}

// NewCreateTaskTool creates a CreateTaskTool backed by the given session.
func NewCreateTaskTool(s *session.Session) *CreateTaskTool {
	return &CreateTaskTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("create_project_task",
		mcp.WithDescription(
			"Create a new task for a specific project. "+
				"Returns confirmation of task creation.",
		),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("Name of the project to create the task in (case-insensitive)"),
		),
		mcp.WithString("task_name",
			mcp.Required(),
			mcp.Description("Name of the new task"),
		),
		mcp.WithNumber("estimated_hours",
			mcp.Description("Estimated hours for the task (optional)"),
		),
	)
}

// Handle processes the create_project_task tool call.
func (t *CreateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectName, err := req.RequireString("project_name")
	if err != nil {
		return mcp.NewToolResultError("project_name is required"), nil
	}
	taskName, err := req.RequireString("task_name")
	if err != nil {
		return mcp.NewToolResultError("task_name is required"), nil
	}
	estimatedHours := req.GetFloat("estimated_hours", 0)
	if estimatedHours < 0 {
		return mcp.NewToolResultError("estimated_hours must not be negative"), nil
	}

	project, projects, err := t.session.ResolveProject(ctx, projectName)
	if err != nil {
		return clientError("fetching projects", err), nil
	}
	if project == nil {
		return projectGuidance(projectName, projects), nil
	}

	var estimatedSeconds *int64
	if estimatedHours > 0 {
		secs := int64(estimatedHours * 3600)
		estimatedSeconds = &secs
	}

	task, err := t.session.Client().CreateTask(ctx, project.WorkspaceID, project.ID, taskName, estimatedSeconds)
	if err != nil {
		return clientError("creating task", err), nil
	}

	status := "Active"
	if !task.Active {
		status = "Inactive"
	}

	var sb strings.Builder
	sb.WriteString("**Task Created Successfully!**\n\n")
	fmt.Fprintf(&sb, "• **Task Name**: %s\n", task.Name)
	fmt.Fprintf(&sb, "• **Project**: %s\n", project.Name)
	fmt.Fprintf(&sb, "• **Task ID**: %d\n", task.ID)
	fmt.Fprintf(&sb, "• **Status**: %s\n", status)
	if estimatedSeconds != nil {
		fmt.Fprintf(&sb, "• **Estimated Time**: %s\n", formatDuration(*estimatedSeconds))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// AllTasksTool handles the get_all_tasks MCP tool.
type AllTasksTool struct {
	session *session.Session
}

// NewAllTasksTool creates an AllTasksTool backed by the given session.
func NewAllTasksTool(s *session.Session) *AllTasksTool {
	return &AllTasksTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *AllTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("get_all_tasks",
		mcp.WithDescription(
			"Get all tasks across all projects in the workspace. "+
				"Returns a comprehensive list of tasks organized by project.",
		),
	)
}

// Handle processes the get_all_tasks tool call. Projects whose task
// listing fails (e.g. tasks not enabled on the plan) are skipped
// rather than failing the whole report.
func (t *AllTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workspaces, err := t.session.Client().ListWorkspaces(ctx)
	if err != nil {
		return clientError("fetching workspaces", err), nil
	}
	if len(workspaces) == 0 {
		return mcp.NewToolResultText("No workspaces found in your Toggl Track account."), nil
	}

	projects, err := t.session.Projects(ctx)
	if err != nil {
		return clientError("fetching projects", err), nil
	}
	if len(projects) == 0 {
		return mcp.NewToolResultText("No projects found in your Toggl Track account."), nil
	}

	workspaceNames := make(map[int64]string, len(workspaces))
	for _, ws := range workspaces {
		workspaceNames[ws.ID] = ws.Name
	}

	var sb strings.Builder
	sb.WriteString("All Tasks Across Projects:\n\n")

	totalTasks := 0
	for _, project := range projects {
		tasks, err := t.session.Client().ListTasks(ctx, project.WorkspaceID, project.ID)
		if err != nil || len(tasks) == 0 {
			continue
		}

		workspaceName := workspaceNames[project.WorkspaceID]
		if workspaceName == "" {
			workspaceName = "Unknown Workspace"
		}
		fmt.Fprintf(&sb, "**%s** (%s)\n", project.Name, workspaceName)

		for _, task := range tasks {
			writeTask(&sb, task, "  ")
			totalTasks++
		}
		sb.WriteString("\n")
	}

	if totalTasks == 0 {
		return mcp.NewToolResultText("No tasks found across any projects."), nil
	}

	fmt.Fprintf(&sb, "**Total Tasks Found: %d**\n", totalTasks)
	return mcp.NewToolResultText(sb.String()), nil
}
