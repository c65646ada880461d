// internal/api/errors.go
package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the SDK can surface. Validation and
// authentication failures are raised before any network traffic; the other
// two come back from the transport layer.
type ErrorKind string

const (
	KindNetworkFailure    ErrorKind = "network_failure"
	KindAPIRejection      ErrorKind = "api_rejection"
	KindValidationFailure ErrorKind = "validation_failure"
	KindNotAuthenticated  ErrorKind = "not_authenticated"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Status  int // HTTP status when the server answered, 0 otherwise
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the classification of err, or an empty kind for errors that
// did not originate in this package.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func IsNotAuthenticated(err error) bool { return KindOf(err) == KindNotAuthenticated }

func IsValidationFailure(err error) bool { return KindOf(err) == KindValidationFailure }
