package http

import (
	"errors"
	"net/http"

	"school-case-management/internal/deadline"
	pkgErrors "school-case-management/pkg/errors"
)

const (
	errCodeUnparsableDuration = 10001
	errCodeInvalidStart       = 10002
	errCodeInvalidDeadline    = 10003
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, deadline.ErrUnparsableDuration):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, errCodeUnparsableDuration, err.Error())
	case errors.Is(err, deadline.ErrInvalidStart):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, errCodeInvalidStart, err.Error())
	case errors.Is(err, deadline.ErrInvalidDeadline):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, errCodeInvalidDeadline, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
