package prompts

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// trackingTemplates are the prompts that drive the running timer.
func trackingTemplates() []Template {
	return []Template{
		{
			Name:        "start_time_tracking",
			Description: "Start time tracking for a project",
			Args: []Arg{
				{Name: "project_name", Description: "Name of the project to track time for"},
				{Name: "description", Description: "Description for the time entry (optional)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				text := fmt.Sprintf("I want to start tracking time for the project '%s'", project)
				if d := args["description"]; d != "" {
					text += fmt.Sprintf(" with the description '%s'", d)
				}
				text += ". Please help me start a new time entry using my Toggl Track account."
				return "Start time tracking for " + project, []mcp.PromptMessage{user(text)}
			},
		},
		{
			Name:        "quick_start_timer",
			Description: "Quickly start a timer with a description",
			Args: []Arg{
				{Name: "description", Description: "Description for the time entry"},
				{Name: "project_name", Description: "Project to assign the timer to (optional)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				description := arg(args, "description", "work")
				text := fmt.Sprintf("Please start a timer with description '%s'", description)
				if p := args["project_name"]; p != "" {
					text += fmt.Sprintf(" for project '%s'", p)
				}
				text += ". Confirm when the timer has started."
				return "Quick start timer", []mcp.PromptMessage{user(text)}
			},
		},
		{
			Name:        "stop_and_start_new",
			Description: "Stop the current timer and start a new one",
			Args: []Arg{
				{Name: "new_description", Description: "Description for the new time entry"},
				{Name: "project_name", Description: "Project for the new timer (optional)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				description := arg(args, "new_description", "new task")
				text := fmt.Sprintf("Please stop my current timer and start a new one with description '%s'", description)
				if p := args["project_name"]; p != "" {
					text += fmt.Sprintf(" for project '%s'", p)
				}
				text += ". Show me the duration of the stopped timer and confirm the new timer has started."
				return "Stop current timer and start new", []mcp.PromptMessage{user(text)}
			},
		},
		{
			Name:        "timer_status_and_control",
			Description: "Check timer status and offer controls",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "Timer status and control", []mcp.PromptMessage{user(
					"Please check my current timer status. If I have a timer running, " +
						"show me the details and ask if I want to stop it. " +
						"If no timer is running, ask if I want to start one.",
				)}
			},
		},
		{
			Name:        "work_session_timer",
			Description: "Start a focused work session timer",
			Args: []Arg{
				{Name: "project_name", Description: "Project to work on"},
				{Name: "duration", Description: "Length of the session (default: 1 hour)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				duration := arg(args, "duration", "1 hour")
				return "Focused work session", []mcp.PromptMessage{user(fmt.Sprintf(
					"I want to start a focused %s work session on '%s'. "+
						"Please start a timer and remind me to take breaks.", duration, project,
				))}
			},
		},
		{
			Name:        "current_status_check",
			Description: "Check current timer and recent activity",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "Current status check", []mcp.PromptMessage{user(
					"Please check my current timer status and show me what I've been working on today.",
				)}
			},
		},
	}
}
