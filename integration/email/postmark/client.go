package postmark

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/postmark/core/client"
	"github.com/dmitrymomot/postmark/core/email"
	"github.com/dmitrymomot/postmark/core/message"
)

// Client implements email.EmailSender on top of the Postmark API client.
type Client struct {
	client *client.Client
	config Config
}

// New creates a Postmark-backed email sender. opts are passed to the
// underlying API client, e.g. client.WithLogger or client.WithTestMode.
func New(cfg Config, opts ...client.Option) (email.EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", email.ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !isValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.SupportEmail == "" || !isValidEmail(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", email.ErrInvalidConfig)
	}

	trackOpens := true
	c, err := client.New(client.Config{
		ServerToken: cfg.PostmarkServerToken,
		Defaults: message.Message{
			From:          cfg.SenderEmail,
			ReplyTo:       cfg.SupportEmail,
			TrackOpens:    &trackOpens,
			TrackLinks:    "HtmlOnly",
			MessageStream: cfg.MessageStream,
		},
	}, opts...)
	if err != nil {
		return nil, errors.Join(email.ErrInvalidConfig, err)
	}

	return &Client{client: c, config: cfg}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config, opts ...client.Option) email.EmailSender {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// SendEmail sends one message from the configured sender with replies going
// to the support address. Opens and HTML link clicks are tracked.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.client.Send(ctx, message.Message{
		To:       []string{params.SendTo},
		Subject:  params.Subject,
		Tag:      params.Tag,
		HTMLBody: params.BodyHTML,
		TextBody: params.BodyText,
	})
	if err != nil {
		if errors.Is(err, message.ErrInvalidMessage) {
			return errors.Join(email.ErrInvalidParams, err)
		}
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if err := resp.RaiseForStatus(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if err := resp.Confirmation.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
