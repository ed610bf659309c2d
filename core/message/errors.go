package message

import "errors"

// Validation errors are raised before any network call.
// Callers match them with errors.Is; details are attached with fmt.Errorf wrapping.
var (
	ErrInvalidMessage    = errors.New("refusing to send malformed message")
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrInvalidHeader     = errors.New("invalid header")
	ErrTooManyRecipients = errors.New("too many recipients")
	ErrMissingRecipient  = errors.New("message has no recipient")
	ErrMissingBody       = errors.New("message has no body")
	ErrTemplateConflict  = errors.New("template and literal content are mutually exclusive")
	ErrMissingTemplate   = errors.New("template id or alias is required")
)
