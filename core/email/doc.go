// Package email defines the EmailSender interface that application code depends
// on, so a concrete provider can be swapped or mocked in tests.
//
//	type EmailSender interface {
//		SendEmail(ctx context.Context, params SendEmailParams) error
//	}
//
// The Postmark implementation lives in integration/email/postmark:
//
//	sender, err := postmark.New(postmark.Config{
//		PostmarkServerToken: token,
//		SenderEmail:         "noreply@example.com",
//		SupportEmail:        "support@example.com",
//	})
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Order Confirmation #12345",
//		BodyHTML: html,
//		Tag:      "order_confirmation",
//	})
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//		// caller bug, don't retry
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// provider rejected the message or was unreachable
//	case errors.Is(err, email.ErrInvalidConfig):
//		// raised by constructors only
//	}
package email
