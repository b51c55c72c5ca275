package service

import (
	"errors"
	"testing"
)

func TestValidationErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and message",
			err: &ValidationError{
				Field:   "message",
				Message: "cannot be empty",
			},
			want: "validation error on field message: cannot be empty",
		},
		{
			name: "empty field",
			err: &ValidationError{
				Field:   "",
				Message: "invalid",
			},
			want: "validation error on field : invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	if got := WrapError(nil, "context"); got != nil {
		t.Errorf("WrapError(nil) = %v, want nil", got)
	}

	original := errors.New("connection refused")
	wrapped := WrapError(original, "generation call failed")
	if wrapped == nil {
		t.Fatal("WrapError() = nil, want error")
	}
	if wrapped.Error() != "generation call failed: connection refused" {
		t.Errorf("WrapError() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, original) {
		t.Error("WrapError() should wrap the original error")
	}
}

func TestSentinelErrorsMatchThroughWrapping(t *testing.T) {
	sentinels := []error{ErrInvalidInput, ErrNotFound, ErrExternalService}
	for _, sentinel := range sentinels {
		wrapped := WrapError(sentinel, "outer context")
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is should match %v through WrapError", sentinel)
		}
	}
}
