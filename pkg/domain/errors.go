package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeEmptySequence          = "EMPTY_SEQUENCE"
	ErrCodeInvalidInterval        = "INVALID_INTERVAL"
	ErrCodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	ErrCodeMissingAssignee        = "MISSING_ASSIGNEE"
	ErrCodeConflict               = "CONFLICT"
	ErrCodeInternal               = "INTERNAL_ERROR"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewEmptySequenceError reports a template or custom sequence without steps.
func NewEmptySequenceError() error {
	return &DomainError{
		Code:    ErrCodeEmptySequence,
		Message: "sequence must contain at least one step",
	}
}

// NewInvalidIntervalError reports a step with a negative day interval.
func NewInvalidIntervalError(stepOrder, days int) error {
	return &DomainError{
		Code:    ErrCodeInvalidInterval,
		Message: fmt.Sprintf("step %d has negative interval_days %d", stepOrder, days),
	}
}

// NewInvalidStateTransitionError reports an operation applied to a touch or
// subscription whose current state does not permit it.
func NewInvalidStateTransitionError(resource, from, op string) error {
	return &DomainError{
		Code:    ErrCodeInvalidStateTransition,
		Message: fmt.Sprintf("%s in state %q does not permit %s", resource, from, op),
	}
}

// NewMissingAssigneeError reports an activation without an assignee.
func NewMissingAssigneeError() error {
	return &DomainError{
		Code:    ErrCodeMissingAssignee,
		Message: "assigned_to is required",
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// Helper functions to check error types

func hasCode(err error, code string) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsEmptySequence checks if the error is an empty sequence error
func IsEmptySequence(err error) bool {
	return hasCode(err, ErrCodeEmptySequence)
}

// IsInvalidInterval checks if the error is an invalid interval error
func IsInvalidInterval(err error) bool {
	return hasCode(err, ErrCodeInvalidInterval)
}

// IsInvalidStateTransition checks if the error is an invalid state transition error
func IsInvalidStateTransition(err error) bool {
	return hasCode(err, ErrCodeInvalidStateTransition)
}

// IsMissingAssignee checks if the error is a missing assignee error
func IsMissingAssignee(err error) bool {
	return hasCode(err, ErrCodeMissingAssignee)
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return hasCode(err, ErrCodeConflict)
}
