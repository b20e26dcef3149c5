package validation

import (
	"errors"
	"testing"
	"time"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 5, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("test", "field", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ggerrors.ErrInvalidConfiguration) {
				t.Error("validation errors should wrap ErrInvalidConfiguration")
			}
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   time.Duration
		wantErr bool
	}{
		{"one second", time.Second, false},
		{"one nanosecond", time.Nanosecond, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveDuration("test", "interval", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositiveDuration(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("test", "name", "api"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNotEmpty("test", "name", ""); err == nil {
		t.Error("expected error for empty string")
	}
}

func TestValidateNotNil(t *testing.T) {
	if err := ValidateNotNil("test", "handle", struct{}{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNotNil("test", "handle", nil); err == nil {
		t.Error("expected error for nil value")
	}
}
