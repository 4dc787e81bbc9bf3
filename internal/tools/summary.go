package tools

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/session"
	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

// TimeSummaryTool handles the get_time_summary MCP tool.
type TimeSummaryTool struct {
	session *session.Session
}

// NewTimeSummaryTool creates a TimeSummaryTool backed by the given session.
func NewTimeSummaryTool(s *session.Session) *TimeSummaryTool {
	return &TimeSummaryTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TimeSummaryTool) Definition() mcp.Tool {
	return mcp.NewTool("get_time_summary",
		mcp.WithDescription(
			"Get a summary of time worked with totals by project. "+
				"Returns each project's total, its share of the grand total, "+
				"and the grand total for the range.",
		),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional, defaults to 7 days ago)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (optional, defaults to today)"),
		),
		mcp.WithString("project_name",
			mcp.Description("Project name to filter by (optional, case-insensitive)"),
		),
	)
}

// Handle processes the get_time_summary tool call.
func (t *TimeSummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectName := req.GetString("project_name", "")

	r, err := resolveRange(req.GetString("start_date", ""), req.GetString("end_date", ""), 7)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projects, err := t.session.Projects(ctx)
	if err != nil {
		return clientError("fetching projects", err), nil
	}

	var filter *toggl.Project
	if projectName != "" {
		filter = toggl.MatchProject(projects, projectName)
		if filter == nil {
			return projectGuidance(projectName, projects), nil
		}
	}

	entries, err := fetchEntriesInRange(ctx, t.session, r)
	if err != nil {
		return clientError("fetching time entries", err), nil
	}

	names := projectNameIndex(projects)

	// Aggregate completed seconds per project bucket. Entries without
	// a project land in an explicit "No project" bucket; running
	// entries are not counted.
	totals := make(map[string]int64)
	var grandTotal int64
	for _, e := range entries {
		if e.Running() {
			continue
		}
		if filter != nil && (e.ProjectID == nil || *e.ProjectID != filter.ID) {
			continue
		}
		bucket := displayProject(e.ProjectID, names)
		totals[bucket] += e.Duration
		grandTotal += e.Duration
	}

	if grandTotal == 0 {
		scope := fmt.Sprintf("from %s", r)
		if filter != nil {
			scope += fmt.Sprintf(" for project %q", filter.Name)
		}
		return mcp.NewToolResultText(fmt.Sprintf("No completed time entries found %s.", scope)), nil
	}

	type row struct {
		name    string
		seconds int64
	}
	rows := make([]row, 0, len(totals))
	for name, seconds := range totals {
		rows = append(rows, row{name, seconds})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].seconds != rows[j].seconds {
			return rows[i].seconds > rows[j].seconds
		}
		return rows[i].name < rows[j].name
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Time Summary (%s):\n\n", r)
	for _, row := range rows {
		// Truncated to one decimal so the displayed percentages can
		// never sum past 100.
		pct := math.Floor(float64(row.seconds)/float64(grandTotal)*1000) / 10
		fmt.Fprintf(&sb, "• **%s**: %s (%.1f%%)\n", row.name, formatDuration(row.seconds), pct)
	}
	fmt.Fprintf(&sb, "\n**Total Time: %s**\n", formatDuration(grandTotal))

	return mcp.NewToolResultText(sb.String()), nil
}
