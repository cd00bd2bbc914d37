package core

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Closed error taxonomy for backend interactions. Every failure surfaced by
// the api package resolves to one of these kinds.
var (
	ErrInvalidCredentials = stderrors.New("invalid credentials")
	ErrValidationFailure  = stderrors.New("validation failure")
	ErrNetworkFailure     = stderrors.New("network failure")
	ErrUnauthorized       = stderrors.New("unauthorized")
	ErrDataIntegrity      = stderrors.New("data integrity error")
	ErrUnknown            = stderrors.New("unknown error")
)

// APIError carries the taxonomy kind of a failed backend call together with
// a normalized human-readable message safe to show to the user.
type APIError struct {
	Kind    error
	Message string
}

func NewAPIError(kind error, msg string) *APIError {
	return &APIError{Kind: kind, Message: msg}
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *APIError) Cause() error  { return e.Kind }
func (e *APIError) Unwrap() error { return e.Kind }

// IsKind reports whether err resolves to the given taxonomy kind,
// unwrapping any wrapping applied along the way.
func IsKind(err, kind error) bool {
	return errors.Cause(err) == kind
}

// ErrorMessage extracts the normalized message attached to err, falling back
// to the provided default when err carries none.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}
