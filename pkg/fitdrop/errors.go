package fitdrop

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common download failures.
var (
	// ErrNotFound is returned when the server has no archive to hand out (404).
	ErrNotFound = errors.New("fitdrop: file not found")
	// ErrUnsupportedMethod is returned when the server rejects the request method (501).
	ErrUnsupportedMethod = errors.New("fitdrop: unsupported method")
	// ErrShortBody is returned when fewer bytes arrive than Content-Length announced.
	ErrShortBody = errors.New("fitdrop: body shorter than Content-Length")
)

// APIError represents a non-2xx response from the download server.
// It supports errors.Is() via Unwrap().
type APIError struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int
	// Message is the plain-text body returned by the server.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("fitdrop: server returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the matching sentinel error for the status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusNotImplemented:
		return ErrUnsupportedMethod
	default:
		return nil
	}
}
