package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries the HTTP status a service has decided on. Message is what
// the caller sees; Err stays server-side.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message, nil)
}

// Internal hides err behind a generic message.
func Internal(code string, err error) *Error {
	return New(http.StatusInternalServerError, code, "An internal error occurred. Please try again later.", err)
}

// As extracts an *Error from err, wrapping anything else as an internal error.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal_error", err)
}
