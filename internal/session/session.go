// Package session holds the per-process state shared by the MCP tools:
// the API client and the lazily-resolved default workspace.
//
// The workspace is the only thing memoized for the process lifetime.
// It is never invalidated: a rename or deletion on the Toggl side is
// not detected. Projects are re-fetched on every invocation so name
// resolution always sees the current list.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

// ErrNoWorkspaces is returned when the account has no workspaces, in
// which case no write operation can proceed.
var ErrNoWorkspaces = errors.New("no workspaces found for this account")

// Session wraps a Toggl client with memoized workspace resolution.
// Safe for concurrent use: racing first calls may each hit the API,
// but they store the same result.
type Session struct {
	client *toggl.Client

	mu        sync.Mutex
	workspace *toggl.Workspace
}

// New creates a Session around the given client.
func New(client *toggl.Client) *Session {
	return &Session{client: client}
}

// Client exposes the underlying API client.
func (s *Session) Client() *toggl.Client {
	return s.client
}

// Workspace returns the default workspace (the first one the API
// lists), resolving it on first use and caching it afterwards.
func (s *Session) Workspace(ctx context.Context) (toggl.Workspace, error) {
	s.mu.Lock()
	if s.workspace != nil {
		ws := *s.workspace
		s.mu.Unlock()
		return ws, nil
	}
	s.mu.Unlock()

	workspaces, err := s.client.ListWorkspaces(ctx)
	if err != nil {
		return toggl.Workspace{}, err
	}
	if len(workspaces) == 0 {
		return toggl.Workspace{}, ErrNoWorkspaces
	}

	ws := workspaces[0]
	s.mu.Lock()
	s.workspace = &ws
	s.mu.Unlock()
	return ws, nil
}

// Projects fetches the current project list. Never cached.
func (s *Session) Projects(ctx context.Context) ([]toggl.Project, error) {
	return s.client.ListProjects(ctx)
}

// ResolveProject resolves a free-text name to a project. The full
// project list is returned alongside so callers can build guidance
// messages on a miss (match == nil) without a second fetch.
func (s *Session) ResolveProject(ctx context.Context, name string) (*toggl.Project, []toggl.Project, error) {
	projects, err := s.client.ListProjects(ctx)
	if err != nil {
		return nil, nil, err
	}
	return toggl.MatchProject(projects, name), projects, nil
}
