package postmark

import (
	"context"

	"github.com/dmitrymomot/postmark/core/bounce"
	"github.com/dmitrymomot/postmark/core/client"
	"github.com/dmitrymomot/postmark/core/message"
	"github.com/dmitrymomot/postmark/core/response"
)

// Limits and well-known values of the Postmark API.
const (
	MaxRecipients    = message.MaxRecipients
	MaxBatchMessages = client.MaxBatchMessages
	TestServerToken  = client.TestServerToken
)

// Every function builds a client from serverToken and opts, then makes one
// call with callOpts. Pass nil when no per-call arguments are needed.

func newClient(serverToken string, opts []client.Option) (*client.Client, error) {
	return client.New(client.Config{ServerToken: serverToken}, opts...)
}

// Send sends one message.
func Send(ctx context.Context, msg message.Message, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*response.SendResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.Send(ctx, msg, callOpts...)
}

// SendBatch sends up to MaxBatchMessages messages in one request.
func SendBatch(ctx context.Context, msgs []message.Message, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*response.BatchSendResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.SendBatch(ctx, msgs, callOpts...)
}

// SendWithTemplate sends one message rendered from a server-side template.
func SendWithTemplate(ctx context.Context, msg message.Message, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*response.SendResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.SendWithTemplate(ctx, msg, callOpts...)
}

// SendBatchWithTemplate sends up to MaxBatchMessages template messages in one request.
func SendBatchWithTemplate(ctx context.Context, msgs []message.Message, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*response.BatchSendResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.SendBatchWithTemplate(ctx, msgs, callOpts...)
}

// GetBounces lists one page of bounces.
func GetBounces(ctx context.Context, params bounce.ListParams, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*bounce.ListResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.Bounces(ctx, params, callOpts...)
}

// GetBounce fetches a single bounce.
func GetBounce(ctx context.Context, id int64, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*bounce.GetResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.Bounce(ctx, id, callOpts...)
}

// GetBounceDump fetches the raw source of a bounced message.
func GetBounceDump(ctx context.Context, id int64, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*bounce.DumpResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.BounceDump(ctx, id, callOpts...)
}

// GetBounceTags lists the tags that have bounces.
func GetBounceTags(ctx context.Context, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*bounce.TagsResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.BounceTags(ctx, callOpts...)
}

// ActivateBounce reactivates the recipient of a bounce.
func ActivateBounce(ctx context.Context, id int64, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*bounce.ActivateResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.ActivateBounce(ctx, id, callOpts...)
}

// GetDeliveryStats fetches bounce counts per type.
func GetDeliveryStats(ctx context.Context, serverToken string, callOpts []client.CallOption, opts ...client.Option) (*bounce.StatsResponse, error) {
	c, err := newClient(serverToken, opts)
	if err != nil {
		return nil, err
	}
	return c.DeliveryStats(ctx, callOpts...)
}
