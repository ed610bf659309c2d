package client

import "errors"

var (
	ErrMissingServerToken  = errors.New("postmark server token is required")
	ErrInvalidConfig       = errors.New("invalid postmark client configuration")
	ErrNoMessages          = errors.New("no messages to send")
	ErrTooManyMessages     = errors.New("too many messages in batch")
	ErrResultCountMismatch = errors.New("batch result count does not match submitted messages")
	ErrRequestFailed       = errors.New("postmark request failed")
)
