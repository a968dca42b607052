package crossref

import (
	"errors"
	"fmt"
)

// Common errors returned by the CrossRef client.
var (
	// ErrNotFound indicates the DOI or query had no match in CrossRef.
	ErrNotFound = errors.New("not found in CrossRef")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("CrossRef API timeout")

	// ErrNetwork indicates a transport-level failure.
	ErrNetwork = errors.New("network error communicating with CrossRef")

	// ErrInvalidResponse indicates an unexpected or undecodable response body.
	ErrInvalidResponse = errors.New("invalid response from CrossRef")
)

// APIError represents a non-OK HTTP status from the CrossRef API.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CrossRef API error: HTTP %d (%s)", e.StatusCode, e.Endpoint)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsTimeout returns true if the error indicates a request timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
