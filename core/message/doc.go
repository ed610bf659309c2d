// Package message models a single Postmark email and validates it against the
// rules of the Postmark send API before anything goes over the network.
//
// # Building a message
//
//	msg := message.Message{
//		From:     "me@example.com",
//		To:       []string{"you@example.com"},
//		Subject:  "Hi",
//		TextBody: "A message",
//	}
//	msg.SetHeader("X-Campaign", "spring")
//	if err := msg.AttachFile("./report.pdf", ""); err != nil {
//		return err
//	}
//	if err := msg.Validate(); err != nil {
//		return err // wraps message.ErrInvalidMessage
//	}
//
// # Rules
//
//   - To, Cc and Bcc together hold no more than MaxRecipients (20) addresses.
//   - A plain message needs HTMLBody or TextBody. A template message needs
//     TemplateID or TemplateAlias and must not carry Subject, HTMLBody or TextBody.
//   - Header names are unique, compared case-insensitively.
//   - Attachments must use an allowed file extension. Content is base64 encoded
//     on construction. The 10MB per-attachment limit is left to the caller.
//
// # Defaults
//
// Merge fills unset fields from a default message without touching either
// input, which lets a long-lived client hold a shared default sender, reply-to
// address or message stream:
//
//	final := msg.Merge(message.Message{From: "noreply@example.com"})
//
// Defaults may carry both literal and template content. A message that sets
// neither takes the literal content with Merge and the template with
// MergeTemplate, so the result never mixes the two.
//
// # Wire form
//
// Message implements json.Marshaler with Postmark field names. Unset fields
// are omitted and recipient lists are comma-joined. FromMap and
// json.Unmarshal perform the reverse mapping.
package message
