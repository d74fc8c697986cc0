package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and error code to return.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Code:       status,
		Message:    message,
	}
}

// NewHTTPErrorWithCode creates an HTTPError with a domain-specific error code.
func NewHTTPErrorWithCode(status, code int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)

// AsHTTPError reports whether err is (or wraps) an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
