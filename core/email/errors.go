package email

import "errors"

// Errors returned by EmailSender implementations. Provider details are
// attached with errors.Join.
var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email configuration")
	ErrInvalidParams     = errors.New("invalid email parameters")
)
