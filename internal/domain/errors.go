package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock: a reservation asked for more units than the
	// available counter holds. Rejected atomically with no partial update.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrCounterUnderflow: a counter move asked for more units than its
	// source counter holds. Rejected atomically with no partial update.
	ErrCounterUnderflow = errors.New("counter underflow")

	// ErrInvalidTransition: the entity is not in a state that permits the
	// requested operation (e.g. returning a non-Active transaction).
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrAlreadyDecided: approve/reject on a transaction whose approval
	// status is no longer Pending. The earlier decision is never overwritten.
	ErrAlreadyDecided = errors.New("approval already decided")
)

// ValidationError rejects bad input before any state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DependencyError records a failure in a dependent write that left the
// system degraded but recoverable (e.g. the inventory record insert after an
// equipment insert). The primary operation still succeeds; the failure is
// logged and surfaced, never swallowed.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s failed: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
