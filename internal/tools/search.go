package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/session"
	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

// SearchTool handles the search_time_entries MCP tool.
type SearchTool struct {
	session *session.Session
}

// NewSearchTool creates a SearchTool backed by the given session.
func NewSearchTool(s *session.Session) *SearchTool {
	return &SearchTool{session: s}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_time_entries",
		mcp.WithDescription(
			"Search time entries by description text with optional date filtering. "+
				"The match is a case-insensitive substring match. "+
				"Returns matching entries grouped by day with a total matched duration.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for in entry descriptions (case-insensitive)"),
		),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional, defaults to 30 days ago)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (optional, defaults to today)"),
		),
	)
}

// Handle processes the search_time_entries tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	r, err := resolveRange(req.GetString("start_date", ""), req.GetString("end_date", ""), 30)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projects, err := t.session.Projects(ctx)
	if err != nil {
		return clientError("fetching projects", err), nil
	}

	entries, err := fetchEntriesInRange(ctx, t.session, r)
	if err != nil {
		return clientError("fetching time entries", err), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No time entries found from %s.", r)), nil
	}

	needle := strings.ToLower(query)
	matches := make([]toggl.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Description), needle) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No time entries found matching %q from %s.", query, r)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Time Entries matching %q (%s):\n\n", query, r)
	total := writeEntryGroups(&sb, matches, projectNameIndex(projects))
	if total > 0 {
		fmt.Fprintf(&sb, "**Total Time for %q: %s**\n", query, formatDuration(total))
	}

	return mcp.NewToolResultText(sb.String()), nil
}
