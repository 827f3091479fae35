// Package domainerrors defines the error taxonomy shared by the registry
// core and its transport layer. Stores and services return these so the
// relay can map every failure kind to a stable, distinguishable response.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the kind of failure independent of its message text.
type Code string

const (
	// CodeUnauthorized covers missing roles and missing relationships
	// (for example a submitter who is not the project owner).
	CodeUnauthorized Code = "unauthorized"

	// CodeNotFound means the referenced project or submission id does not exist.
	CodeNotFound Code = "not_found"

	// CodeInvalidInput covers zero quantities and empty required text.
	CodeInvalidInput Code = "invalid_input"

	// CodeAlreadyProcessed means the submission left the Submitted state
	// before this approval or rejection arrived.
	CodeAlreadyProcessed Code = "already_processed"

	// CodeProjectInactive means the submission's project no longer accepts
	// workflow transitions.
	CodeProjectInactive Code = "project_inactive"

	// CodeInsufficientBalance means the caller tried to move or retire more
	// credits than it holds.
	CodeInsufficientBalance Code = "insufficient_balance"

	// CodePaused means the system pause switch rejects mutations.
	CodePaused Code = "system_paused"

	// CodeInternal is reserved for infrastructure failures that are not the
	// caller's fault.
	CodeInternal Code = "internal"
)

// Error carries a Code alongside the message so callers can branch on the
// failure kind without parsing text.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying infrastructure error.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// non-domain errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps each taxonomy entry to the status the relay layer
// should respond with.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeAlreadyProcessed, CodeProjectInactive, CodeInsufficientBalance:
		return http.StatusConflict
	case CodePaused:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
