package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ValidationError describes one invalid settings field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is (or wraps) a validation error.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidLogLevels lists the accepted log_level values. Empty is also accepted
// and keeps logging off.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidateEndpoint checks that endpoint is an absolute http or https URL.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return NewValidationError("endpoint", "cannot be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return NewValidationError("endpoint", err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewValidationError("endpoint", fmt.Sprintf("scheme must be http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return NewValidationError("endpoint", "missing host")
	}
	return nil
}

// ValidateLogLevel checks level against ValidLogLevels.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	for _, valid := range ValidLogLevels {
		if strings.EqualFold(level, valid) {
			return nil
		}
	}
	return NewValidationError("log_level",
		fmt.Sprintf("must be one of %s, got %q", strings.Join(ValidLogLevels, ", "), level))
}

// Validate checks every field and returns all problems joined together, or
// nil if the settings are usable.
func (s *Settings) Validate() error {
	var errs []error

	if err := ValidateEndpoint(s.Endpoint); err != nil {
		errs = append(errs, err)
	}

	if s.HTTPTimeout < 0 {
		errs = append(errs, NewValidationError("http_timeout", fmt.Sprintf("cannot be negative, got %s", s.HTTPTimeout)))
	}

	if err := ValidateLogLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
