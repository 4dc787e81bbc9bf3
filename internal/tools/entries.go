package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/session"
	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

// fetchEntriesInRange queries the API for r and clips the result to r.
// Single-day ranges are widened by two days on each side before the
// call: Toggl's handling of start_date == end_date varies by account,
// so the widened query plus a local clip is always safe. The clip also
// runs for normal ranges, keeping the inclusive-calendar-date contract
// independent of the API's boundary semantics.
func fetchEntriesInRange(ctx context.Context, s *session.Session, r dateRange) ([]toggl.TimeEntry, error) {
	queryStart, queryEnd := r.start, r.end
	if r.singleDay() {
		queryStart = r.start.AddDate(0, 0, -2)
		queryEnd = r.end.AddDate(0, 0, 2)
	}

	entries, err := s.Client().ListTimeEntries(ctx, queryStart, queryEnd)
	if err != nil {
		return nil, err
	}

	clipped := entries[:0]
	for _, e := range entries {
		if r.contains(e.Start) {
			clipped = append(clipped, e)
		}
	}
	return clipped, nil
}

// TimeEntriesTool handles the get_time_entries MCP tool.
type TimeEntriesTool struct {
	session *session.Session
}

// NewTimeEntriesTool creates a TimeEntriesTool backed by the given session.
func NewTimeEntriesTool(s *session.Session) *TimeEntriesTool {
	return &TimeEntriesTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TimeEntriesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_time_entries",
		mcp.WithDescription(
			"Get time entries from Toggl Track with optional filtering. "+
				"Returns a detailed list of time entries grouped by day, "+
				"with descriptions, durations, daily totals, and a grand total.",
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

// Handle processes the get_time_entries tool call.
func (t *TimeEntriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	if filter != nil {
		filtered := entries[:0]
		for _, e := range entries {
			if e.ProjectID != nil && *e.ProjectID == filter.ID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		scope := fmt.Sprintf("from %s", r)
		if projectName != "" {
			scope += fmt.Sprintf(" for project %q", filter.Name)
		}
		return mcp.NewToolResultText(fmt.Sprintf("No time entries found %s.", scope)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Time Entries (%s):\n\n", r)
	total := writeEntryGroups(&sb, entries, projectNameIndex(projects))
	if total > 0 {
		fmt.Fprintf(&sb, "**Total: %s**\n", formatDuration(total))
	}

	return mcp.NewToolResultText(sb.String()), nil
}
