package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Assignment failures. Each one belongs to exactly one AssignmentErrorKind.
var (
	ErrOfficerNotFound    = fmt.Errorf("officer %w", ErrNotFound)
	ErrAssignerNotFound   = fmt.Errorf("assigner %w", ErrNotFound)
	ErrComplaintNotFound  = fmt.Errorf("complaint %w", ErrNotFound)
	ErrAlreadyAssigned    = fmt.Errorf("complaint already has an active assignment: %w", ErrConflict)
	ErrNoActiveAssignment = fmt.Errorf("complaint has no active assignment: %w", ErrConflict)
	ErrStoreFailure       = errors.New("store failure")
)

// ErrDirectoryUnavailable is returned when every officer lookup strategy failed.
// The individual strategy errors are joined underneath it.
var ErrDirectoryUnavailable = errors.New("officer directory unavailable")

// AssignmentErrorKind is the closed set of assignment failure categories.
type AssignmentErrorKind string

const (
	AssignmentErrorNone               AssignmentErrorKind = ""
	AssignmentErrorValidation         AssignmentErrorKind = "validation"
	AssignmentErrorOfficerNotFound    AssignmentErrorKind = "officer_not_found"
	AssignmentErrorAssignerNotFound   AssignmentErrorKind = "assigner_not_found"
	AssignmentErrorComplaintNotFound  AssignmentErrorKind = "complaint_not_found"
	AssignmentErrorAlreadyAssigned    AssignmentErrorKind = "already_assigned"
	AssignmentErrorNoActiveAssignment AssignmentErrorKind = "no_active_assignment"
	AssignmentErrorStoreFailure       AssignmentErrorKind = "store_failure"
)

func (k AssignmentErrorKind) String() string { return string(k) }

// Retryable reports whether a higher layer may retry the operation.
// Only store failures qualify; state conflicts never do.
func (k AssignmentErrorKind) Retryable() bool {
	return k == AssignmentErrorStoreFailure
}

// KindOf classifies err into an AssignmentErrorKind.
// Unknown non-nil errors are reported as store failures.
func KindOf(err error) AssignmentErrorKind {
	switch {
	case err == nil:
		return AssignmentErrorNone
	case errors.Is(err, ErrValidation):
		return AssignmentErrorValidation
	case errors.Is(err, ErrOfficerNotFound):
		return AssignmentErrorOfficerNotFound
	case errors.Is(err, ErrAssignerNotFound):
		return AssignmentErrorAssignerNotFound
	case errors.Is(err, ErrComplaintNotFound):
		return AssignmentErrorComplaintNotFound
	case errors.Is(err, ErrAlreadyAssigned):
		return AssignmentErrorAlreadyAssigned
	case errors.Is(err, ErrNoActiveAssignment):
		return AssignmentErrorNoActiveAssignment
	default:
		return AssignmentErrorStoreFailure
	}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
