// Package client implements the Postmark server API: single and batch sends,
// template sends, bounce inspection and delivery statistics.
//
// A Client is built once from an immutable Config and reused:
//
//	c, err := client.New(client.Config{
//		ServerToken: token,
//		Defaults:    message.Message{From: "noreply@example.com"},
//	}, client.WithLogger(log))
//
// or, reading POSTMARK_SERVER_TOKEN from the environment:
//
//	c, err := client.NewFromEnv()
//
// # Deferred errors
//
// Operations return an error only when the request could not be built or
// sent: an invalid message, a batch outside 1..MaxBatchMessages, a transport
// failure. Any HTTP status is returned as a response, so a caller can look at
// partial batch results before deciding the call failed:
//
//	resp, err := c.SendBatch(ctx, msgs)
//	if err != nil {
//		return err
//	}
//	if err := resp.RaiseForStatus(); err != nil {
//		return err // *response.Error, matches response.ErrUnauthorized etc.
//	}
//	for _, i := range resp.Failed() {
//		log.Warn("rejected", "to", resp.Results[i].To, "error", resp.Results[i].Err())
//	}
//
// # Per-call options
//
// CallOptions add headers or query parameters, switch the server token or set
// a deadline for one call. They can't change the payload, and the server token
// header always comes from the client or WithServerTokenOverride.
//
// Bounce listings are not paged automatically; advance ListParams.Offset.
package client
