package toggl

import "fmt"

// APIError is returned when the Toggl API answers with a non-2xx
// status. Body holds the (truncated) response body, which Toggl uses
// for human-readable validation and rate-limit messages.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("toggl: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("toggl: unexpected status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps connection-level failures (DNS, refused,
// timeout) so callers can distinguish them from API rejections.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("toggl: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
