package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status to respond with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status, defaulting to 500 for unset codes.
func (e *HTTPError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// Wrapf builds an HTTPError with a formatted message.
func Wrapf(code int, format string, args ...any) *HTTPError {
	return NewHTTPError(code, fmt.Sprintf(format, args...))
}
