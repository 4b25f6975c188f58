package televideo

import (
	"errors"
	"fmt"
)

// Application error codes. These map failures to the categories the UI
// cares about: a page that does not exist remotely reads differently
// from a page whose content could not be decoded.
const (
	EDECODE      = "decode"      // response received but not decodable as an image
	EINTERNAL    = "internal"    // response received but its body could not be read
	EINVALID     = "invalid"     // validation failed on caller input
	ENOTFOUND    = "not_found"   // remote responded with a non-success status
	EUNAVAILABLE = "unavailable" // transport-level failure (DNS, connect, timeout, TLS)
)

// Error represents an application-specific error. Application errors can
// be unwrapped by the caller to extract the code and message.
//
// Any non-application error (such as a disk error) should be reported as
// an EINTERNAL error; the user should only see "internal error" as the
// message in that case.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("televideo error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
