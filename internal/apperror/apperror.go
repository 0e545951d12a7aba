// Package apperror holds the error kinds shared by the storage, service and
// HTTP layers. Callers classify with errors.Is against ErrNotFound and
// ErrBadRequest; anything else is an internal error.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
)

// Error carries a kind, a client-facing detail and an optional cause.
type Error struct {
	Kind    error
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Details + ": " + e.Err.Error()
	}
	return e.Kind.Error() + ": " + e.Details
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NotFound builds an ErrNotFound with formatted details.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Details: fmt.Sprintf(format, args...)}
}

// BadRequest builds an ErrBadRequest with formatted details.
func BadRequest(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Details: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and details to an underlying cause.
func Wrap(kind, cause error, details string) error {
	return &Error{Kind: kind, Details: details, Err: cause}
}

// Details returns the client-facing detail of err, or "" when err does not
// carry one.
func Details(err error) string {
	var d interface{ ClientDetails() string }
	if errors.As(err, &d) {
		return d.ClientDetails()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return ""
}
