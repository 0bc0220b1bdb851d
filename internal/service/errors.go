package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when a shared-secret check fails. It is
	// reported distinctly from validation errors and server faults.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotConfigured is returned when an optional collaborator (object
	// storage) is required by a request but was not configured.
	ErrNotConfigured = errors.New("not configured")
)

// ValidationError represents a validation error with a field name. Requests
// failing validation are rejected before any side effect occurs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
