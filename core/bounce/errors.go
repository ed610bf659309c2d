package bounce

import "errors"

var (
	ErrBounce       = errors.New("bounce API failure")
	ErrInvalidType  = errors.New("invalid bounce type")
	ErrInvalidCount = errors.New("invalid bounce count")
	ErrInvalidID    = errors.New("invalid bounce id")
)
