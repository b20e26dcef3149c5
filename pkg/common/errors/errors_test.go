package errors

import (
	"errors"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrBucketFull", ErrBucketFull, "bucket full"},
		{"ErrNoToken", ErrNoToken, "no token available"},
		{"ErrNotFound", ErrNotFound, "limiter not found"},
		{"ErrAlreadyRegistered", ErrAlreadyRegistered, "limiter already registered"},
		{"ErrUnknownAlgorithm", ErrUnknownAlgorithm, "unknown rate limiting algorithm"},
		{"ErrClosed", ErrClosed, "limiter is closed"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bucket full", ErrBucketFull, true},
		{"no token", ErrNoToken, true},
		{"not found", ErrNotFound, false},
		{"closed", ErrClosed, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "leaky",
				Field:  "capacity",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "leaky: invalid capacity=-1 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "token",
				Field:  "rate",
				Value:  0,
				Reason: "must be positive",
				Hint:   "use a value greater than 0",
			},
			want: "token: invalid rate=0 (must be positive) - use a value greater than 0",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "manager",
				Field:  "name",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "manager: invalid name= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if verr.Unwrap() != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", verr.Unwrap())
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("module", "field", 123, "reason").
		WithHint("try something else")

	if err.Hint != "try something else" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try something else")
	}
}
