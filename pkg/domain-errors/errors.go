// Package domainerrors provides coded errors for the dispute intake domain.
//
// Services return these so transport layers can translate outcomes into HTTP
// statuses without string matching, and so callers can distinguish "your input
// is wrong" (validation) from "we could not check right now" (unavailable).
// Business verdicts (invalid/hold eligibility outcomes) are NOT errors; they
// are ordinary return values. Only unexpected or infrastructure conditions
// travel through this package.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeValidation marks rejected user input (field-level rule failures
	// surfaced at trust boundaries, e.g. request body parsing).
	CodeValidation Code = "validation_error"

	// CodeInvalidInput marks a value that failed a Parse* constructor.
	CodeInvalidInput Code = "invalid_input"

	// CodeBadRequest marks structurally broken requests (missing body,
	// malformed JSON, unknown step identifiers).
	CodeBadRequest Code = "bad_request"

	// CodeUnauthorized marks missing or invalid credentials.
	CodeUnauthorized Code = "unauthorized"

	// CodeNotFound marks a missing resource (case lookup by ID).
	CodeNotFound Code = "not_found"

	// CodeUnavailable marks a collaborator failure: the reservation system or
	// another dependency could not be reached. Callers must not record a
	// business verdict when they see this code.
	CodeUnavailable Code = "unavailable"

	// CodeInternal marks unexpected conditions. Details are logged, never
	// returned to clients.
	CodeInternal Code = "internal_error"

	// CodeInvariantViolation marks a broken internal assumption (nil where a
	// value is required). Distinct from CodeInternal so tests can assert that
	// engine preconditions, not infrastructure, tripped.
	CodeInvariantViolation Code = "invariant_violation"
)

// Error is a coded domain error. Construct via New or Wrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is / errors.As chains.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		if err == nil {
			break
		}
	}
	return false
}

// GetCode returns the outermost code on err, or CodeInternal when err carries
// no code at all.
func GetCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Is delegates to errors.Is so call sites can stay on one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ToHTTPStatus maps a code to the HTTP status the transport layer writes.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
