package validators

import (
	"errors"
	"fmt"
)

// Rejection kinds. Every error returned by this package is a *ValidationError
// whose Kind is one of these sentinels, so callers can branch with errors.Is.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidType   = errors.New("invalid type")
	ErrTooLong       = errors.New("value too long")
	ErrMissing       = errors.New("value is required")
	ErrInvalidFormat = errors.New("invalid format")
	ErrNotNumeric    = errors.New("value is not numeric")
	ErrOutOfRange    = errors.New("value out of range")
	ErrTooLarge      = errors.New("payload too large")
	ErrMalformedJSON = errors.New("malformed JSON")
	ErrNotAnObject   = errors.New("JSON is not an object")
	ErrInvalid       = errors.New("invalid value")
	ErrTooDeep       = errors.New("nesting too deep")
	ErrMissingField  = errors.New("missing required field")
)

// ValidationError is a user-correctable rejection of input. Message is safe
// to return to the client as is.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
