package profilepulse

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // element or entity does not exist
	ETIMEOUT     = "timeout"     // element did not appear before the deadline
	EUNAVAILABLE = "unavailable" // remote service rejected or failed the request
	EINTERNAL    = "internal"    // internal error
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code and a
// human-readable message.
type Error struct {
	// Code is machine-readable, one of the constants above.
	Code string

	// Message is human-readable.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("profilepulse error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the root error, if available.
// Returns EINTERNAL for non-application errors and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Returns a generic message for non-application errors and an empty string
// for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
