package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrMalformedValue = errors.New("malformed record")
)
