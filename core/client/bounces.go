package client

import (
	"context"

	"github.com/dmitrymomot/postmark/core/bounce"
)

// The bounce operations return the wrapper together with an error matching
// response.ErrInvalidBody when a 2xx body can't be decoded.

// Bounces lists one page of bounces. Paging is driven by the caller through
// params.Count and params.Offset.
func (c *Client) Bounces(ctx context.Context, params bounce.ListParams, opts ...CallOption) (*bounce.ListResponse, error) {
	query, err := params.Values()
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, EndpointBounces, EndpointBounces.Path, query, nil, opts)
	if err != nil {
		return nil, err
	}
	return bounce.NewListResponse(resp)
}

// Bounce fetches a single bounce.
func (c *Client) Bounce(ctx context.Context, id int64, opts ...CallOption) (*bounce.GetResponse, error) {
	if err := bounce.CheckID(id); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, EndpointBounce, EndpointBounce.WithID(id), nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return bounce.NewGetResponse(resp)
}

// BounceDump fetches the raw SMTP source of a bounced message.
func (c *Client) BounceDump(ctx context.Context, id int64, opts ...CallOption) (*bounce.DumpResponse, error) {
	if err := bounce.CheckID(id); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, EndpointBounceDump, EndpointBounceDump.WithID(id), nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return bounce.NewDumpResponse(resp)
}

// ActivateBounce reactivates the recipient of a bounce so it can receive
// messages again.
func (c *Client) ActivateBounce(ctx context.Context, id int64, opts ...CallOption) (*bounce.ActivateResponse, error) {
	if err := bounce.CheckID(id); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, EndpointBounceActivate, EndpointBounceActivate.WithID(id), nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return bounce.NewActivateResponse(resp)
}

// BounceTags lists the tags that have bounces.
func (c *Client) BounceTags(ctx context.Context, opts ...CallOption) (*bounce.TagsResponse, error) {
	resp, err := c.do(ctx, EndpointBounceTags, EndpointBounceTags.Path, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return bounce.NewTagsResponse(resp)
}

// DeliveryStats fetches bounce counts per type and the number of inactive
// addresses.
func (c *Client) DeliveryStats(ctx context.Context, opts ...CallOption) (*bounce.StatsResponse, error) {
	resp, err := c.do(ctx, EndpointDeliveryStats, EndpointDeliveryStats.Path, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return bounce.NewStatsResponse(resp)
}
