// Package toggl implements a typed client for the Toggl Track API v9.
//
// Every call authenticates with HTTP basic auth using the API token as
// the username and the literal string "api_token" as the password,
// which is Toggl's documented convention. Non-2xx responses surface as
// *APIError, connection-level failures as *TransportError. The client
// performs no retries; the Toggl rate limit (~1 req/s) is the caller's
// problem.
package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is the production Toggl Track API host.
const DefaultBaseURL = "https://api.track.toggl.com"

// createdWith tags entries written by this server so they are
// attributable in the Toggl UI.
const createdWith = "toggl-track-mcp"

// maxErrorBody caps how much of an error response we keep around.
const maxErrorBody = 4096

// Client talks to the Toggl Track API v9.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	log      *log.Logger
}

// NewClient builds a Client. An empty baseURL selects the production
// host; a nil logger disables request logging.
func NewClient(baseURL, apiToken string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http:     &http.Client{Timeout: timeout},
		log:      logger,
	}
}

// ListProjects fetches all projects visible to the authenticated user.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/v9/me/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListWorkspaces fetches all workspaces for the authenticated user.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var workspaces []Workspace
	if err := c.do(ctx, http.MethodGet, "/api/v9/workspaces", nil, nil, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// ListTimeEntries fetches entries between two calendar dates. The
// bounds are passed to the API as YYYY-MM-DD, unmodified; the API
// defines the exact filtering semantics.
func (c *Client) ListTimeEntries(ctx context.Context, start, end time.Time) ([]TimeEntry, error) {
	q := url.Values{}
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))

	var entries []TimeEntry
	if err := c.do(ctx, http.MethodGet, "/api/v9/me/time_entries", q, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CurrentTimeEntry fetches the running entry, or nil when no timer is
// active. The v9 API signals "nothing running" either as a 404 or as a
// 200 with a literal null body, depending on endpoint vintage; both
// map to (nil, nil).
func (c *Client) CurrentTimeEntry(ctx context.Context) (*TimeEntry, error) {
	body, status, err := c.raw(ctx, http.MethodGet, "/api/v9/me/time_entries/current", nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status < 200 || status > 299 {
		return nil, &APIError{StatusCode: status, Body: truncate(body)}
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, nil
	}
	var entry TimeEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("toggl: decoding current time entry: %w", err)
	}
	return &entry, nil
}

// startRequest is the POST body for creating a running entry.
type startRequest struct {
	CreatedWith string   `json:"created_with"`
	Description string   `json:"description"`
	WorkspaceID int64    `json:"workspace_id"`
	ProjectID   *int64   `json:"project_id,omitempty"`
	Duration    int64    `json:"duration"`
	Start       string   `json:"start"`
	Stop        *string  `json:"stop"`
	Tags        []string `json:"tags"`
	Billable    bool     `json:"billable"`
}

// StartTimeEntry creates a running entry in the workspace. Duration -1
// marks the entry as running; if another timer is active Toggl stops
// it server-side and that behavior is surfaced as-is.
func (c *Client) StartTimeEntry(ctx context.Context, workspaceID int64, description string, projectID *int64) (*TimeEntry, error) {
	body := startRequest{
		CreatedWith: createdWith,
		Description: description,
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
		Duration:    -1,
		Start:       time.Now().UTC().Format(time.RFC3339),
		Tags:        []string{},
	}

	path := fmt.Sprintf("/api/v9/workspaces/%d/time_entries", workspaceID)
	var entry TimeEntry
	if err := c.do(ctx, http.MethodPost, path, nil, body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// StopTimeEntry stops a running entry and returns its final state.
func (c *Client) StopTimeEntry(ctx context.Context, workspaceID, entryID int64) (*TimeEntry, error) {
	path := fmt.Sprintf("/api/v9/workspaces/%d/time_entries/%d/stop", workspaceID, entryID)
	var entry TimeEntry
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListTasks fetches all tasks under a project.
func (c *Client) ListTasks(ctx context.Context, workspaceID, projectID int64) ([]Task, error) {
	path := fmt.Sprintf("/api/v9/workspaces/%d/projects/%d/tasks", workspaceID, projectID)
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// createTaskRequest is the POST body for creating a task.
type createTaskRequest struct {
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	EstimatedSeconds *int64 `json:"estimated_seconds,omitempty"`
}

// CreateTask creates an active task under a project.
func (c *Client) CreateTask(ctx context.Context, workspaceID, projectID int64, name string, estimatedSeconds *int64) (*Task, error) {
	body := createTaskRequest{
		Name:             name,
		Active:           true,
		EstimatedSeconds: estimatedSeconds,
	}

	path := fmt.Sprintf("/api/v9/workspaces/%d/projects/%d/tasks", workspaceID, projectID)
	var task Task
	if err := c.do(ctx, http.MethodPost, path, nil, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// do issues a request and decodes a 2xx JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	body, status, err := c.raw(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &APIError{StatusCode: status, Body: truncate(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("toggl: decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// raw issues an authenticated request and returns the response body
// and status. Only transport-level failures produce an error.
func (c *Client) raw(ctx context.Context, method, path string, query url.Values, reqBody any) ([]byte, int, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, 0, fmt.Errorf("toggl: invalid base URL %q: %w", c.baseURL, err)
	}
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, 0, fmt.Errorf("toggl: encoding %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return nil, 0, fmt.Errorf("toggl: building %s %s request: %w", method, path, err)
	}
	req.SetBasicAuth(c.apiToken, "api_token")
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("toggl request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Op: method + " " + path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &TransportError{Op: "reading " + method + " " + path + " response", Err: err}
	}

	return data, resp.StatusCode, nil
}

// truncate keeps error bodies readable in messages.
func truncate(body []byte) string {
	s := string(bytes.TrimSpace(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
