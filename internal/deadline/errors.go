package deadline

import "errors"

var (
	ErrUnparsableDuration = errors.New("duration has no usable magnitude")
	ErrInvalidStart       = errors.New("invalid start")
	ErrInvalidDeadline    = errors.New("invalid deadline")
)
