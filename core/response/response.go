package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Response is a raw Postmark API response. The body is read once and kept so
// callers can inspect it before deciding whether to escalate with RaiseForStatus.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New reads and closes the body of an HTTP response.
func New(resp *http.Response) (*Response, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// RaiseForStatus returns nil below 400 and an *Error for 4xx and 5xx:
// 401 is ErrUnauthorized, 422 is ErrUnprocessableEntity, 500 is
// ErrInternalServer and any other status is ErrResponse.
func (r *Response) RaiseForStatus() error {
	if r.StatusCode < http.StatusBadRequest {
		return nil
	}
	return r.toError()
}

func (r *Response) toError() *Error {
	e := &Error{
		Kind:       kindForStatus(r.StatusCode),
		StatusCode: r.StatusCode,
		ErrorCode:  -1,
	}

	var body struct {
		ErrorCode   *int   `json:"ErrorCode"`
		Message     string `json:"Message"`
		MessageID   string `json:"MessageID"`
		SubmittedAt string `json:"SubmittedAt"`
		To          string `json:"To"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return e
	}
	if body.ErrorCode == nil && body.Message == "" {
		return e
	}
	e.validJSON = true
	if body.ErrorCode != nil {
		e.ErrorCode = *body.ErrorCode
	}
	e.Message = body.Message
	e.MessageID = body.MessageID
	e.SubmittedAt = body.SubmittedAt
	e.To = body.To
	return e
}
