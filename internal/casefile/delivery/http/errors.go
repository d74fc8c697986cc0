package http

import (
	"errors"
	"net/http"

	"school-case-management/internal/casefile"
	pkgErrors "school-case-management/pkg/errors"
)

const (
	errCodeCaseNotFound       = 20001
	errCodeInvalidUrgency     = 20002
	errCodeBackendUnavailable = 20003
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, casefile.ErrCaseNotFound):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusNotFound, errCodeCaseNotFound, casefile.ErrCaseNotFound.Error())
	case errors.Is(err, casefile.ErrInvalidUrgency):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, errCodeInvalidUrgency, casefile.ErrInvalidUrgency.Error())
	case errors.Is(err, casefile.ErrBackendUnavailable):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, errCodeBackendUnavailable, casefile.ErrBackendUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
