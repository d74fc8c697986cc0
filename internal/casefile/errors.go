package casefile

import "errors"

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrInvalidUrgency     = errors.New("invalid urgency filter")
	ErrBackendUnavailable = errors.New("school backend unavailable")
)
