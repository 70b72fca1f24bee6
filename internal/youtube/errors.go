package youtube

import (
	"errors"
	"fmt"
)

// APIError represents a non-200 response from the YouTube Data API.
type APIError struct {
	StatusCode int    // HTTP status code returned by the API
	Body       string // Raw response body for diagnostics
}

func (e *APIError) Error() string {
	return fmt.Sprintf("YouTube API error: status %d, message: %s", e.StatusCode, e.Body)
}

// NewAPIError creates a new API error.
func NewAPIError(statusCode int, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// IsAPIError checks if an error is a YouTube API error.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// StatusCodeOf extracts the HTTP status code from an API error, or 0.
func StatusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
