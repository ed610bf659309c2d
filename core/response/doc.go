// Package response wraps raw Postmark API responses and maps failures to
// typed errors.
//
// Client calls return a wrapper for every HTTP status. Escalation is left to
// the caller, which makes it possible to inspect partial batch results before
// treating the call as failed:
//
//	resp, err := c.SendBatch(ctx, msgs)
//	if err != nil {
//		return err // validation or transport failure
//	}
//	for _, i := range resp.Failed() {
//		log.Warn("message rejected", "index", i, "error", resp.Results[i].Err())
//	}
//	if err := resp.RaiseForStatus(); err != nil {
//		return err
//	}
//
// # Error kinds
//
//	401        ErrUnauthorized
//	422        ErrUnprocessableEntity
//	500        ErrInternalServer
//	other 4xx/5xx ErrResponse
//
// Every returned error is an *Error and matches ErrResponse, so both styles work:
//
//	if errors.Is(err, response.ErrUnauthorized) { ... }
//
//	var perr *response.Error
//	if errors.As(err, &perr) {
//		log.Error("postmark rejected request", "code", perr.ErrorCode, "message", perr.Message)
//	}
package response
