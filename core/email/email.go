package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// EmailSender delivers transactional emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is the provider-independent shape of one email.
type SendEmailParams struct {
	SendTo   string // required
	Subject  string // required
	BodyHTML string
	BodyText string
	Tag      string
}

// Validate reports every missing field at once.
func (p SendEmailParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.SendTo) == "" {
		errs = append(errs, errors.New("recipient is required"))
	}
	if strings.TrimSpace(p.Subject) == "" {
		errs = append(errs, errors.New("subject is required"))
	}
	if strings.TrimSpace(p.BodyHTML) == "" && strings.TrimSpace(p.BodyText) == "" {
		errs = append(errs, errors.New("HTML or text body is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}
