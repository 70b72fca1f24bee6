package auth

import (
	"errors"
	"fmt"
)

// ExchangeError represents a refused or failed token exchange. StatusCode
// and Body carry what the token endpoint reported, so the UI can surface
// the upstream message verbatim.
type ExchangeError struct {
	StatusCode int    // HTTP status from the token endpoint (0 if never sent)
	Body       string // Raw response body or a local description
	Cause      error  // Underlying error cause (optional)
}

func (e *ExchangeError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("token exchange failed: status %d, message: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("token exchange failed: %s", e.Body)
}

func (e *ExchangeError) Unwrap() error {
	return e.Cause
}

// NewExchangeError creates a new exchange error.
func NewExchangeError(statusCode int, body string, cause error) *ExchangeError {
	return &ExchangeError{
		StatusCode: statusCode,
		Body:       body,
		Cause:      cause,
	}
}

// IsExchangeError checks if an error is a token exchange error.
func IsExchangeError(err error) bool {
	var exchangeErr *ExchangeError
	return errors.As(err, &exchangeErr)
}
