package praticagem

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The codes make the retry-vs-fatal distinction explicit in the value
// returned by a service instead of relying on error type hierarchies:
// EINVALID failures are configuration problems that retrying cannot fix,
// EUNAVAILABLE failures are transient network conditions that were already
// retried up to the configured limit, and ESTRUCTURE failures mean the
// source document's shape no longer matches expectations and needs human
// attention.
const (
	EINVALID     = "invalid"     // malformed configuration (e.g. bad URL)
	EUNAVAILABLE = "unavailable" // transient fetch failure, attempts exhausted
	ESTRUCTURE   = "structure"   // source table layout changed
	EINTERNAL    = "internal"    // unclassified failure
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("praticagem error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with formatting directives.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
