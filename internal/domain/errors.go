package domain

import "errors"

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidCapacity   = errors.New("capacity must be greater than 0")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrInvalidSelection  = errors.New("invalid selection")
)
