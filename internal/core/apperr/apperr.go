package apperr

import (
	"errors"
	"net/http"
)

// Error carries an HTTP-mapped code alongside the message so handlers can
// translate any domain failure into the JSON error envelope without
// inspecting its origin.
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &Error{Code: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Code: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Code: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Error{Code: http.StatusNotFound, Msg: msg} }

// Conflict maps to 400, not 409: a duplicate registration has always been
// reported as a plain bad request and clients key off that.
func Conflict(msg string) error { return &Error{Code: http.StatusBadRequest, Msg: msg} }

func Internal(msg string, err error) error {
	return &Error{Code: http.StatusInternalServerError, Msg: msg, Err: err}
}

// Status returns the HTTP status for err, defaulting to 500 for anything
// that is not an *Error.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return http.StatusInternalServerError
}

// Message returns the client-safe message for err. Untyped errors never
// leak their detail outward.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Code == http.StatusInternalServerError {
			return "Internal server error"
		}
		return ae.Error()
	}
	return "Internal server error"
}
