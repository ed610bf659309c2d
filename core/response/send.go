package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Confirmation is the result Postmark returns for one submitted message.
type Confirmation struct {
	ErrorCode   int
	Message     string
	MessageID   string
	SubmittedAt time.Time
	To          string
}

// UnmarshalJSON applies Postmark's defaults: ErrorCode 0 and Message "OK"
// when absent. An unparsable SubmittedAt is left as the zero time.
func (c *Confirmation) UnmarshalJSON(data []byte) error {
	var w struct {
		ErrorCode   int     `json:"ErrorCode"`
		Message     *string `json:"Message"`
		MessageID   string  `json:"MessageID"`
		SubmittedAt string  `json:"SubmittedAt"`
		To          string  `json:"To"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = Confirmation{
		ErrorCode: w.ErrorCode,
		Message:   "OK",
		MessageID: w.MessageID,
		To:        w.To,
	}
	if w.Message != nil {
		c.Message = *w.Message
	}
	if ts, err := time.Parse(time.RFC3339Nano, w.SubmittedAt); err == nil {
		c.SubmittedAt = ts
	}
	return nil
}

// OK reports whether Postmark accepted the message.
func (c Confirmation) OK() bool {
	return c.ErrorCode == 0
}

// Err returns nil for an accepted message, or an *Error of kind
// ErrUnprocessableEntity carrying the vendor error code and message.
func (c Confirmation) Err() error {
	if c.OK() {
		return nil
	}
	return &Error{
		Kind:       ErrUnprocessableEntity,
		StatusCode: http.StatusUnprocessableEntity,
		ErrorCode:  c.ErrorCode,
		Message:    c.Message,
		MessageID:  c.MessageID,
		To:         c.To,
		validJSON:  true,
	}
}

// UUID parses MessageID.
func (c Confirmation) UUID() (uuid.UUID, error) {
	return uuid.Parse(c.MessageID)
}

// SendResponse wraps the response of a single message send.
type SendResponse struct {
	*Response
	Confirmation Confirmation
}

// NewSendResponse decodes a single send result. A body that isn't valid JSON
// leaves Confirmation with its defaults; use RaiseForStatus to escalate.
func NewSendResponse(r *Response) *SendResponse {
	out := &SendResponse{Response: r, Confirmation: Confirmation{Message: "OK"}}
	_ = json.Unmarshal(r.Body, &out.Confirmation)
	return out
}

// BatchSendResponse wraps the response of a batch send. Results follow the
// order of the submitted messages.
type BatchSendResponse struct {
	*Response
	Results []Confirmation
}

// NewBatchSendResponse decodes batch send results.
func NewBatchSendResponse(r *Response) *BatchSendResponse {
	out := &BatchSendResponse{Response: r}
	if err := json.Unmarshal(r.Body, &out.Results); err != nil {
		out.Results = nil
	}
	return out
}

// Failed returns the indices of rejected messages.
func (b *BatchSendResponse) Failed() []int {
	var idx []int
	for i, c := range b.Results {
		if !c.OK() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Err joins the errors of every rejected message, or returns nil.
func (b *BatchSendResponse) Err() error {
	var errs []error
	for i, c := range b.Results {
		if err := c.Err(); err != nil {
			errs = append(errs, fmt.Errorf("message %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
