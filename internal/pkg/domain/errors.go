package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a DomainError so callers can tell failures apart.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeAuthRequired ErrorCode = "AUTH_REQUIRED"
	CodeInvalidState ErrorCode = "INVALID_STATE_TRANSITION"
	CodeBackend      ErrorCode = "BACKEND_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeConflict     ErrorCode = "CONFLICT"
)

// DomainError is the single error type surfaced by domain and application code.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewValidationError reports a violated input policy.
func NewValidationError(message string) error {
	return &DomainError{Code: CodeValidation, Message: message}
}

// NewAuthRequiredError reports an operation attempted without an identity.
func NewAuthRequiredError(message string) error {
	return &DomainError{Code: CodeAuthRequired, Message: message}
}

// NewInvalidStateError reports a disallowed status transition.
func NewInvalidStateError(from, to string) error {
	return &DomainError{
		Code:    CodeInvalidState,
		Message: fmt.Sprintf("cannot transition from %q to %q", from, to),
	}
}

// NewBackendError wraps a failure reported by the backend gateway.
func NewBackendError(op string, err error) error {
	return &DomainError{Code: CodeBackend, Message: op, Err: err}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) error {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewForbiddenError reports an identity lacking the required role.
func NewForbiddenError(message string) error {
	return &DomainError{Code: CodeForbidden, Message: message}
}

// NewConflictError reports a lost optimistic update.
func NewConflictError(message string) error {
	return &DomainError{Code: CodeConflict, Message: message}
}

// CodeOf returns the code of the first DomainError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsDomainError reports whether err already carries a DomainError.
func IsDomainError(err error) bool {
	return CodeOf(err) != ""
}

// Is helpers, one per kind.

func IsValidation(err error) bool   { return CodeOf(err) == CodeValidation }
func IsAuthRequired(err error) bool { return CodeOf(err) == CodeAuthRequired }
func IsInvalidState(err error) bool { return CodeOf(err) == CodeInvalidState }
func IsBackend(err error) bool      { return CodeOf(err) == CodeBackend }
func IsNotFound(err error) bool     { return CodeOf(err) == CodeNotFound }
func IsForbidden(err error) bool    { return CodeOf(err) == CodeForbidden }
func IsConflict(err error) bool     { return CodeOf(err) == CodeConflict }

// NewTransitionError reports a transition that cannot be attempted at all,
// such as one on an entity that is not loaded.
func NewTransitionError(message string) error {
	return &DomainError{Code: CodeInvalidState, Message: message}
}
