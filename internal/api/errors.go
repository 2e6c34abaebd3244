package api

import (
	"fmt"
)

// NetworkError is the only error kind the client returns. It covers
// transport failures, non-2xx responses and undecodable bodies alike.
type NetworkError struct {
	// Op names the client operation, e.g. "projects" or "delete project"
	Op string
	// Method and URL of the failed request
	Method string
	URL    string
	// StatusCode is zero when no response was received
	StatusCode int
	// Err is the underlying cause
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api: %s: %s %s: status %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("api: %s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Err
}
