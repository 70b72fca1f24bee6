package config

import (
	"errors"
	"fmt"
)

// ConfigurationError represents errors during configuration validation.
type ConfigurationError struct {
	Field   string // The environment variable that caused the error
	Message string // Human-readable error message
	Cause   error  // Underlying error cause (optional)
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error in field '%s': %s (caused by: %v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
	}
}

// NewConfigurationErrorWithCause creates a new configuration error with an underlying cause.
func NewConfigurationErrorWithCause(field, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// GetConfigurationField extracts the field name from a configuration error.
func GetConfigurationField(err error) string {
	var configErr *ConfigurationError
	if errors.As(err, &configErr) {
		return configErr.Field
	}
	return ""
}
