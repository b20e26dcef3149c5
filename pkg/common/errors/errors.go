package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gogate library

var (
	// ErrBucketFull indicates a leaky bucket rejected a request because
	// its waiter queue is at capacity
	ErrBucketFull = errors.New("bucket full")

	// ErrNoToken indicates a token bucket rejected a request because
	// no tokens are available
	ErrNoToken = errors.New("no token available")

	// ErrNotFound indicates no limiter is registered under the given name
	ErrNotFound = errors.New("limiter not found")

	// ErrAlreadyRegistered indicates a limiter with the given name is
	// already live
	ErrAlreadyRegistered = errors.New("limiter already registered")

	// ErrUnknownAlgorithm indicates a creation request named an algorithm
	// that is neither leaky bucket nor token bucket
	ErrUnknownAlgorithm = errors.New("unknown rate limiting algorithm")

	// ErrClosed indicates an operation was attempted on a destroyed limiter,
	// or a queued waiter was failed because its limiter was destroyed
	ErrClosed = errors.New("limiter is closed")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation later
func IsRetryable(err error) bool {
	return errors.Is(err, ErrBucketFull) || errors.Is(err, ErrNoToken)
}

// IsTemporary returns true if the error indicates a temporary condition
func IsTemporary(err error) bool {
	return errors.Is(err, ErrBucketFull) || errors.Is(err, ErrNoToken)
}

// ValidationError describes an invalid configuration value. It identifies
// the module and field so callers can report precisely what to fix.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a suggestion for fixing the error and returns the error
// for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is checks against ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
