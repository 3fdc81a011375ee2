package orderapi

import "fmt"

// NetworkError wraps a transport failure: the request never produced an HTTP
// response. It is distinct from ServerError so callers can tell a dead
// upstream from a rejected request.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("order api unreachable during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError represents a non-success HTTP response from the order API.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("order api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("order api returned status %d: %s", e.StatusCode, e.Message)
}
