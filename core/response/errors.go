package response

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every *Error matches ErrResponse and exactly one kind.
var (
	ErrResponse            = errors.New("postmark response error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServer      = errors.New("internal server error")
)

// ErrInvalidBody is returned when a response body can't be decoded into the
// expected shape.
var ErrInvalidBody = errors.New("invalid postmark response body")

// Error is a failure reported by the Postmark API. ErrorCode and Message are
// copied verbatim from the response body.
type Error struct {
	Kind        error
	StatusCode  int
	ErrorCode   int
	Message     string
	MessageID   string
	SubmittedAt string
	To          string

	// validJSON is false when the body could not be decoded.
	validJSON bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if !e.validJSON {
		return fmt.Sprintf("postmark: not a valid JSON response, status: %d", e.StatusCode)
	}
	return fmt.Sprintf("%s [ErrorCode %d]", e.Message, e.ErrorCode)
}

// Unwrap exposes the error kind to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Kind == nil || e.Kind == ErrResponse {
		return []error{ErrResponse}
	}
	return []error{e.Kind, ErrResponse}
}

// kindForStatus maps HTTP status codes to error kinds.
func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	case http.StatusInternalServerError:
		return ErrInternalServer
	default:
		return ErrResponse
	}
}
