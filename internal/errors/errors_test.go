package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("skip", -1, "must be non-negative")

	msg := err.Error()
	if !strings.Contains(msg, "skip") || !strings.Contains(msg, "-1") || !strings.Contains(msg, "non-negative") {
		t.Errorf("unexpected message: %q", msg)
	}

	var ve *ValidationError
	if !errors.As(error(err), &ve) {
		t.Error("expected errors.As to match *ValidationError")
	}
}

func TestScanError_Unwrap(t *testing.T) {
	err := NewScanError("setup", ErrEmptySeries)

	if !errors.Is(err, ErrEmptySeries) {
		t.Error("expected the wrapped sentinel to match through the chain")
	}
	if !Is(err, ErrEmptySeries) {
		t.Error("the package helper must follow the chain too")
	}
	if !strings.Contains(err.Error(), "setup") {
		t.Errorf("message must name the stage: %q", err.Error())
	}
}
