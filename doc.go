// Package postmark is a client for the Postmark transactional email API.
//
// The functions in this package build a client, make one call and return the
// response, which is enough for scripts and one-off sends:
//
//	resp, err := postmark.Send(ctx, message.Message{
//		From:     "me@example.com",
//		To:       []string{"you@example.com"},
//		Subject:  "Hi",
//		TextBody: "A message",
//	}, token, nil)
//	if err != nil {
//		return err // invalid message or transport failure
//	}
//	if err := resp.RaiseForStatus(); err != nil {
//		return err // 401, 422, 500 ...
//	}
//
// Per-call transport arguments go in the callOpts slice, client settings in
// the trailing options:
//
//	resp, err := postmark.GetBounceTags(ctx, token,
//		[]client.CallOption{client.WithTimeout(5 * time.Second)},
//		client.WithLogger(log),
//	)
//
// Long-lived programs should build a core/client.Client once and reuse it.
//
// # Packages
//
//   - core/message: messages, attachments, validation and wire format
//   - core/client: the API client, endpoints and per-call options
//   - core/response: raw responses, send confirmations and error kinds
//   - core/bounce: bounce records, listing filters and statistics
//   - core/config: environment loading for the server token
//   - core/logger: slog helpers for request logging
//   - core/email, integration/email/postmark: a provider-neutral EmailSender
//     backed by Postmark
package postmark
