package prompts

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// analysisTemplates are the prompts that ask for interpretation of
// tracking data. Two of them seed a multi-message conversation.
func analysisTemplates() []Template {
	return []Template{
		{
			Name:        "project_time_analysis",
			Description: "Structured conversation for project time analysis",
			Args: []Arg{
				{Name: "project_name", Description: "Project to analyze"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				return "Project time analysis", []mcp.PromptMessage{
					user(fmt.Sprintf("I need to analyze my time tracking for the project '%s'", project)),
					assistant("I'll help you analyze your time tracking data. " +
						"Let me first get your projects and recent time entries for this project."),
					user("Please show me the total hours, daily breakdown, " +
						"and any patterns in my work schedule for this project."),
				}
			},
		},
		{
			Name:        "productivity_analysis",
			Description: "Structured conversation for productivity analysis",
			Args: []Arg{
				{Name: "period", Description: "Period to analyze (default: week)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				period := arg(args, "period", "week")
				return "Productivity analysis", []mcp.PromptMessage{
					user(fmt.Sprintf("I want to analyze my productivity for this %s", period)),
					assistant("I'll help you analyze your productivity patterns. " +
						"Let me get your time tracking data and current timer status."),
					user("Please show me my time distribution, most productive periods, " +
						"and suggest improvements."),
				}
			},
		},
		{
			Name:        "optimize_workflow",
			Description: "Workflow optimization based on tracking data",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "Optimize workflow", []mcp.PromptMessage{user(
					"Based on my Toggl Track time tracking data, please analyze my work " +
						"patterns and suggest ways to optimize my workflow and improve productivity.",
				)}
			},
		},
		{
			Name:        "project_deep_dive",
			Description: "In-depth analysis of a single project",
			Args: []Arg{
				{Name: "project_name", Description: "Project to analyze"},
				{Name: "days", Description: "Number of days to cover (default: 30)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				project := arg(args, "project_name", "my project")
				days := arg(args, "days", "30")
				return "Project deep dive", []mcp.PromptMessage{user(fmt.Sprintf(
					"Please provide a detailed analysis of my work on '%s' over the last %s days. "+
						"Include time patterns, task descriptions, and productivity insights.",
					project, days,
				))}
			},
		},
		{
			Name:        "search_by_description",
			Description: "Search time entries by description text",
			Args: []Arg{
				{Name: "query", Description: "Text to search for"},
				{Name: "days", Description: "Number of days to cover (default: 30)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				query := arg(args, "query", "meeting")
				days := arg(args, "days", "30")
				return "Search by description", []mcp.PromptMessage{user(fmt.Sprintf(
					"Please search my time entries for '%s' over the last %s days "+
						"and show me the total time spent on related activities.",
					query, days,
				))}
			},
		},
	}
}
