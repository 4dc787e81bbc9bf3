package toggl

import "time"

// Workspace is the top-level scoping container in Toggl Track.
type Workspace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Project is a named bucket of work within a workspace.
type Project struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
	ClientID    *int64 `json:"client_id"`
	Color       string `json:"color"`
	Active      bool   `json:"active"`
	Private     bool   `json:"is_private"`
}

// TimeEntry is a single tracked interval of work. A running entry has
// no Stop time and a negative Duration (Toggl v9 convention).
type TimeEntry struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	ProjectID   *int64     `json:"project_id"`
	WorkspaceID int64      `json:"workspace_id"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop"`
	Duration    int64      `json:"duration"`
	Tags        []string   `json:"tags"`
}

// Running reports whether the entry is still being tracked.
func (e TimeEntry) Running() bool {
	return e.Stop == nil || e.Duration < 0
}

// Task is a named unit of planned work under a project.
type Task struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	ProjectID        int64  `json:"project_id"`
	WorkspaceID      int64  `json:"workspace_id"`
	Active           bool   `json:"active"`
	EstimatedSeconds *int64 `json:"estimated_seconds"`
}
