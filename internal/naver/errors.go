package naver

import (
	"errors"
	"fmt"
)

// Sentinel errors for credential and quota failures. Callers detect them
// with errors.Is; both abort a run before any partial result is published.
var (
	// ErrInvalidCredentials is returned when the API rejects the client
	// ID/secret pair (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid API credentials: check client ID and secret")

	// ErrQuotaExceeded is returned when the API reports a permission or
	// rate limit failure (HTTP 403 or 429).
	ErrQuotaExceeded = errors.New("API quota exceeded or permission denied")
)

// SearchError wraps transport-level or unexpected HTTP failures from the
// search API. StatusCode is zero when the request never produced a response.
type SearchError struct {
	// StatusCode is the HTTP status of the failed call, or 0 for transport
	// failures.
	StatusCode int

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("search API request failed: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *SearchError) Unwrap() error {
	return e.Err
}
