// Package bounce holds the data types and request parameters of the Postmark
// bounce API, and the wrappers for its responses.
//
// All bounce endpoints are read-only except activation. Listing is paginated
// and nothing here pages automatically:
//
//	p := bounce.ListParams{Type: "HardBounce", Count: 50}
//	for {
//		page, err := c.Bounces(ctx, p)
//		if err != nil {
//			return err
//		}
//		if err := page.RaiseForStatus(); err != nil {
//			return err
//		}
//		handle(page.Bounces)
//		p.Offset += len(page.Bounces)
//		if len(page.Bounces) == 0 || p.Offset >= page.Total {
//			break
//		}
//	}
//
// An unknown bounce type fails with ErrInvalidType before any request is made.
package bounce
