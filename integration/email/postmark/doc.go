// Package postmark implements email.EmailSender with the Postmark API client
// from core/client.
//
// Every message is sent from Config.SenderEmail with Reply-To set to
// Config.SupportEmail. Opens are tracked, and link clicks in HTML bodies only.
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg) // POSTMARK_SERVER_TOKEN, SENDER_EMAIL, SUPPORT_EMAIL
//
//	sender := postmark.MustNewClient(cfg, client.WithLogger(log))
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Password Reset Request",
//		BodyHTML: html,
//		Tag:      "password-reset",
//	})
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		var perr *response.Error
//		if errors.As(err, &perr) {
//			log.Error("postmark rejected email", "code", perr.ErrorCode)
//		}
//	}
//
// Pass client.WithTestMode() to validate messages against Postmark without
// delivering them.
package postmark
