package prompts

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// taskTemplates are the prompts around project tasks.
func taskTemplates() []Template {
	return []Template{
		{
			Name:        "view_project_tasks",
			Description: "View all tasks for a project",
			Args: []Arg{
				{Name: "project_name", Description: "Project to list tasks for"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				return "View project tasks", []mcp.PromptMessage{user(fmt.Sprintf(
					"Please show me all tasks for the project '%s' with their "+
						"current status and estimated time.", project,
				))}
			},
		},
		{
			Name:        "create_new_task",
			Description: "Create a new task under a project",
			Args: []Arg{
				{Name: "project_name", Description: "Project to create the task in"},
				{Name: "task_name", Description: "Name of the new task"},
				{Name: "estimated_hours", Description: "Estimated hours (optional)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				task := arg(args, "task_name", "new task")
				text := fmt.Sprintf("Please create a new task called '%s' for project '%s'", task, project)
				if h := args["estimated_hours"]; h != "" {
					text += fmt.Sprintf(" with an estimated time of %s hours", h)
				}
				text += ". Confirm when the task has been created."
				return "Create new task", []mcp.PromptMessage{user(text)}
			},
		},
		{
			Name:        "task_planning_session",
			Description: "Plan out tasks for a project",
			Args: []Arg{
				{Name: "project_name", Description: "Project to plan tasks for"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				return "Task planning session", []mcp.PromptMessage{user(fmt.Sprintf(
					"I want to plan out tasks for the project '%s'. Please show me "+
						"existing tasks and help me create new ones based on the project requirements.",
					project,
				))}
			},
		},
		{
			Name:        "project_task_overview",
			Description: "Comprehensive task overview across projects",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "Project task overview", []mcp.PromptMessage{user(
					"Please give me an overview of tasks across all my projects. " +
						"Show me which projects have tasks, what needs attention, " +
						"and help me prioritize my work.",
				)}
			},
		},
		{
			Name:        "list_all_tasks",
			Description: "List all tasks across all projects",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "List all tasks", []mcp.PromptMessage{user(
					"Please show me all tasks across all my projects, organized by project. " +
						"Include task status and estimated time for each task.",
				)}
			},
		},
	}
}
