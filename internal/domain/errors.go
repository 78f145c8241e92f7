package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals invalid or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrIndexUnsupported signals that the store cannot run a compound (filter + order) query.
	ErrIndexUnsupported = errors.New("compound query not supported by store")
	// ErrUnauthorized signals a missing or unverifiable bearer token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a verified caller without the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)

// ValidationError wraps ErrValidation with a client-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation creates a validation error.
func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrMissingFields is returned by record constructors when required fields are empty.
var ErrMissingFields = &ValidationError{Message: "Missing required fields"}
