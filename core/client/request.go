package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/postmark/core/logger"
	"github.com/dmitrymomot/postmark/core/response"
)

const serverTokenHeader = "X-Postmark-Server-Token"

// RequestArgs holds per-call transport arguments. The payload is not part of
// it, so call options cannot replace the request body.
type RequestArgs struct {
	Header      http.Header
	Query       url.Values
	ServerToken string
	Timeout     time.Duration
}

// CallOption customizes a single API call.
type CallOption func(*RequestArgs)

// WithHeader adds a request header. Accept and Content-Type may be
// overridden; the server token header may not.
func WithHeader(name, value string) CallOption {
	return func(a *RequestArgs) {
		a.Header.Set(name, value)
	}
}

// WithQuery adds a query parameter, replacing any value the call would set.
func WithQuery(name, value string) CallOption {
	return func(a *RequestArgs) {
		a.Query.Set(name, value)
	}
}

// WithServerTokenOverride uses a different server token for this call only.
func WithServerTokenOverride(token string) CallOption {
	return func(a *RequestArgs) {
		a.ServerToken = token
	}
}

// WithTimeout bounds this call with its own deadline.
func WithTimeout(d time.Duration) CallOption {
	return func(a *RequestArgs) {
		a.Timeout = d
	}
}

func newRequestArgs(opts []CallOption) RequestArgs {
	args := RequestArgs{Header: http.Header{}, Query: url.Values{}}
	for _, opt := range opts {
		opt(&args)
	}
	return args
}

// do performs one API call. Any HTTP status is returned as a response; only
// encoding and transport failures are errors.
func (c *Client) do(ctx context.Context, ep Endpoint, path string, query url.Values, payload any, opts []CallOption) (*response.Response, error) {
	args := newRequestArgs(opts)

	token := c.token
	if args.ServerToken != "" {
		token = args.ServerToken
	}

	if args.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, args.Timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode %s payload: %w", ErrRequestFailed, ep.Name, err)
		}
		body = bytes.NewReader(data)
	}

	if query == nil {
		query = url.Values{}
	}
	for k, vs := range args.Query {
		query[k] = vs
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range args.Header {
		req.Header[k] = vs
	}
	req.Header.Set(serverTokenHeader, token)

	start := time.Now()
	httpResp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "postmark request failed",
			logger.Endpoint(ep.Name),
			logger.Method(ep.Method),
			logger.Path(path),
			logger.Latency(time.Since(start)),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, ep.Method, path, err)
	}

	resp, err := response.New(httpResp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	c.log.DebugContext(ctx, "postmark request",
		logger.Endpoint(ep.Name),
		logger.Method(ep.Method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Latency(time.Since(start)),
	)
	return resp, nil
}
