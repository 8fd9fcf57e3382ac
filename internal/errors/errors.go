// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidMode      = errors.New("invalid fibonacci mode")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInsufficientData = errors.New("insufficient data")
	ErrEmptySeries      = errors.New("empty price series")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrDataNotFound     = errors.New("data not found")
	ErrDatabaseError    = errors.New("database error")
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ScanError represents an error that aborted a scan run.
type ScanError struct {
	Stage string
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error [%s]: %v", e.Stage, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError.
func NewScanError(stage string, err error) *ScanError {
	return &ScanError{Stage: stage, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
