package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"unavailable", ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("quantity must be >= %d", 1)
	if err.Error() != "quantity must be >= 1" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !IsValidation(err) {
		t.Fatal("expected validation error to be recognized")
	}
	if !IsValidation(fmt.Errorf("wrap: %w", err)) {
		t.Fatal("expected wrapped validation error to be recognized")
	}
	if IsValidation(ErrNotFound) {
		t.Fatal("sentinel must not be treated as validation error")
	}
}
