package prompts

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// reportTemplates are the prompts that request formatted reports.
func reportTemplates() []Template {
	return []Template{
		{
			Name:        "weekly_time_report",
			Description: "Request a weekly time report",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "Weekly time report", []mcp.PromptMessage{user(
					"Please generate a weekly time report showing my time entries, " +
						"total hours worked, and project breakdown for this week " +
						"using my Toggl Track data.",
				)}
			},
		},
		{
			Name:        "detailed_time_report",
			Description: "Request detailed time entries for analysis",
			Args: []Arg{
				{Name: "start_date", Description: "Start date (YYYY-MM-DD)"},
				{Name: "end_date", Description: "End date (YYYY-MM-DD, optional)"},
				{Name: "project_name", Description: "Project to filter by (optional)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				start := arg(args, "start_date", "last week")
				text := fmt.Sprintf("Please show me detailed time entries from %s", start)
				if e := args["end_date"]; e != "" {
					text += fmt.Sprintf(" to %s", e)
				}
				if p := args["project_name"]; p != "" {
					text += fmt.Sprintf(" for project '%s'", p)
				}
				text += ". Include descriptions, durations, and daily breakdowns."
				return "Detailed time report", []mcp.PromptMessage{user(text)}
			},
		},
		{
			Name:        "time_summary_report",
			Description: "Request a time summary with project totals",
			Args: []Arg{
				{Name: "days", Description: "Number of days to cover (default: 7)"},
				{Name: "project_name", Description: "Project to filter by (optional)"},
			},
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				days := arg(args, "days", "7")
				text := fmt.Sprintf("Please give me a time summary for the last %s days", days)
				if p := args["project_name"]; p != "" {
					text += fmt.Sprintf(" for project '%s'", p)
				}
				text += ". Show total hours by project with percentages."
				return "Time summary report", []mcp.PromptMessage{user(text)}
			},
		},
		{
			Name:        "project_overview",
			Description: "Get an overview of all projects",
			Build: func(args map[string]string) (string, []mcp.PromptMessage) {
				return "Project overview", []mcp.PromptMessage{user(
					"Please show me all my Toggl Track projects and workspaces, " +
						"organized in a clear format with project details and current status.",
				)}
			},
		},
	}
}
