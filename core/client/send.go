package client

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/postmark/core/logger"
	"github.com/dmitrymomot/postmark/core/message"
	"github.com/dmitrymomot/postmark/core/response"
)

// Send submits one message. The message is merged over the client defaults
// and validated before any network call.
func (c *Client) Send(ctx context.Context, msg message.Message, opts ...CallOption) (*response.SendResponse, error) {
	merged := msg.Merge(c.defaults)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, EndpointSend, EndpointSend.Path, nil, merged, opts)
	if err != nil {
		return nil, err
	}
	return c.logSend(ctx, response.NewSendResponse(resp)), nil
}

// SendWithTemplate submits one message rendered from a server-side template.
func (c *Client) SendWithTemplate(ctx context.Context, msg message.Message, opts ...CallOption) (*response.SendResponse, error) {
	merged := msg.MergeTemplate(c.defaults)
	if err := merged.ValidateTemplate(); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, EndpointSendWithTemplate, EndpointSendWithTemplate.Path, nil, merged, opts)
	if err != nil {
		return nil, err
	}
	return c.logSend(ctx, response.NewSendResponse(resp)), nil
}

// SendBatch submits up to MaxBatchMessages messages in one request. Results
// follow the order of msgs. A rejected message does not fail the batch;
// inspect BatchSendResponse.Failed or Err.
func (c *Client) SendBatch(ctx context.Context, msgs []message.Message, opts ...CallOption) (*response.BatchSendResponse, error) {
	merged, err := c.prepareBatch(msgs, message.Message.Merge, message.Message.Validate)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, EndpointSendBatch, EndpointSendBatch.Path, nil, merged, opts)
	if err != nil {
		return nil, err
	}
	return c.checkBatch(ctx, response.NewBatchSendResponse(resp), len(merged))
}

// SendBatchWithTemplate submits up to MaxBatchMessages template messages in
// one request.
func (c *Client) SendBatchWithTemplate(ctx context.Context, msgs []message.Message, opts ...CallOption) (*response.BatchSendResponse, error) {
	merged, err := c.prepareBatch(msgs, message.Message.MergeTemplate, message.Message.ValidateTemplate)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Messages []message.Message `json:"Messages"`
	}{Messages: merged}

	resp, err := c.do(ctx, EndpointSendBatchWithTemplate, EndpointSendBatchWithTemplate.Path, nil, payload, opts)
	if err != nil {
		return nil, err
	}
	return c.checkBatch(ctx, response.NewBatchSendResponse(resp), len(merged))
}

func (c *Client) prepareBatch(
	msgs []message.Message,
	merge func(message.Message, message.Message) message.Message,
	validate func(message.Message) error,
) ([]message.Message, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: %w", message.ErrInvalidMessage, ErrNoMessages)
	}
	if len(msgs) > MaxBatchMessages {
		return nil, fmt.Errorf("%w: %w: got %d, no more than %d accepted",
			message.ErrInvalidMessage, ErrTooManyMessages, len(msgs), MaxBatchMessages)
	}

	merged := make([]message.Message, len(msgs))
	for i, m := range msgs {
		merged[i] = merge(m, c.defaults)
		if err := validate(merged[i]); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return merged, nil
}

// checkBatch rejects a successful response that can't be mapped back onto
// the submitted messages. The response is returned either way.
func (c *Client) checkBatch(ctx context.Context, out *response.BatchSendResponse, submitted int) (*response.BatchSendResponse, error) {
	if out.OK() && len(out.Results) != submitted {
		return out, fmt.Errorf("%w: submitted %d, got %d", ErrResultCountMismatch, submitted, len(out.Results))
	}
	c.log.DebugContext(ctx, "postmark batch submitted",
		logger.Count("messages", submitted),
		logger.Count("failed", len(out.Failed())),
	)
	return out, nil
}

func (c *Client) logSend(ctx context.Context, out *response.SendResponse) *response.SendResponse {
	c.log.DebugContext(ctx, "postmark message submitted",
		logger.MessageID(out.Confirmation.MessageID),
		logger.ErrorCode(out.Confirmation.ErrorCode),
	)
	return out
}
