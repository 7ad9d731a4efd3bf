package weverse

import (
	"errors"
	"fmt"
)

// Error kinds returned by the Weverse API. Match with errors.Is and use
// errors.As with *APIError to inspect the failed URL and status code.
var (
	ErrTokenExpired   = errors.New("access token expired")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrInternalServer = errors.New("internal server error")
	ErrRequestFailed  = errors.New("request failed")
)

// APIError describes a non-200 response from the Weverse API.
type APIError struct {
	URL        string
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weverse: %s (status %d, url %s): %s", e.kind, e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("weverse: %s (status %d, url %s)", e.kind, e.StatusCode, e.URL)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func newAPIError(url string, statusCode int, message string) *APIError {
	return &APIError{
		URL:        url,
		StatusCode: statusCode,
		Message:    message,
		kind:       errorKind(statusCode),
	}
}

func errorKind(statusCode int) error {
	switch statusCode {
	case 401:
		return ErrTokenExpired
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 500:
		return ErrInternalServer
	default:
		return ErrRequestFailed
	}
}

// LoginError is returned when the credential exchange with the account API fails.
type LoginError struct {
	StatusCode int
	Message    string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("weverse: login failed (status %d): %s", e.StatusCode, e.Message)
}
