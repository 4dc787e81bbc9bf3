// Package tools implements the MCP tools exposed by the server.
//
// Each tool is a struct holding its dependencies (the shared Session)
// with a Definition for registration and a Handle compatible with
// mcp-go's CallToolRequest signature. One file per tool cluster.
//
// Failure conventions, applied uniformly at the tool boundary:
//   - client errors (transport or API) become a single readable error
//     line via clientError, never a raw Go error up to the host
//   - a project name that resolves to nothing is not an error: the
//     tool returns guidance listing the valid names
//   - empty result sets are successful responses with an explicit
//     "none found" message
package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

// clientError converts a client failure into a one-line tool error.
func clientError(action string, err error) *mcp.CallToolResult {
	var apiErr *toggl.APIError
	if errors.As(err, &apiErr) {
		msg := fmt.Sprintf("Error %s: Toggl API returned status %d", action, apiErr.StatusCode)
		if apiErr.Body != "" {
			msg += ": " + apiErr.Body
		}
		return mcp.NewToolResultError(msg)
	}

	var transportErr *toggl.TransportError
	if errors.As(err, &transportErr) {
		return mcp.NewToolResultError(fmt.Sprintf("Error %s: could not reach Toggl Track: %v", action, transportErr.Err))
	}

	return mcp.NewToolResultError(fmt.Sprintf("Error %s: %v", action, err))
}

// projectGuidance is the response for a project name that resolved to
// nothing: a successful message listing the valid names, since typos
// and stale names are the dominant failure mode.
func projectGuidance(name string, projects []toggl.Project) *mcp.CallToolResult {
	if len(projects) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Project %q not found: there are no projects in your Toggl Track account.", name))
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Project %q not found. Available projects: %s",
		name, strings.Join(toggl.ProjectNames(projects), ", ")))
}
