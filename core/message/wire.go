package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// wireMessage mirrors the Postmark send payload. Every field is omitempty so
// unset fields never reach the API as null or "".
type wireMessage struct {
	From          string            `json:"From,omitempty"`
	To            addressList       `json:"To,omitempty"`
	Cc            addressList       `json:"Cc,omitempty"`
	Bcc           addressList       `json:"Bcc,omitempty"`
	Subject       string            `json:"Subject,omitempty"`
	Tag           string            `json:"Tag,omitempty"`
	HTMLBody      string            `json:"HtmlBody,omitempty"`
	TextBody      string            `json:"TextBody,omitempty"`
	ReplyTo       string            `json:"ReplyTo,omitempty"`
	Headers       []Header          `json:"Headers,omitempty"`
	Attachments   []Attachment      `json:"Attachments,omitempty"`
	TrackOpens    *bool             `json:"TrackOpens,omitempty"`
	TrackLinks    string            `json:"TrackLinks,omitempty"`
	Metadata      map[string]string `json:"Metadata,omitempty"`
	MessageStream string            `json:"MessageStream,omitempty"`
	TemplateID    int64             `json:"TemplateId,omitempty"`
	TemplateAlias string            `json:"TemplateAlias,omitempty"`
	TemplateModel map[string]any    `json:"TemplateModel,omitempty"`
	InlineCSS     *bool             `json:"InlineCss,omitempty"`
}

// addressList is comma-delimited on the wire. Decoding also accepts a JSON array.
type addressList []string

func (l addressList) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(l, ","))
}

func (l *addressList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return fmt.Errorf("recipients must be a string or a list of strings: %w", err)
		}
		list = strings.Split(joined, ",")
	}
	out := make([]string, 0, len(list))
	for _, addr := range list {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	*l = out
	return nil
}

// MarshalJSON encodes the message with Postmark field names.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMessage{
		From:          m.From,
		To:            m.To,
		Cc:            m.Cc,
		Bcc:           m.Bcc,
		Subject:       m.Subject,
		Tag:           m.Tag,
		HTMLBody:      m.HTMLBody,
		TextBody:      m.TextBody,
		ReplyTo:       m.ReplyTo,
		Headers:       m.Headers,
		Attachments:   m.Attachments,
		TrackOpens:    m.TrackOpens,
		TrackLinks:    m.TrackLinks,
		Metadata:      m.Metadata,
		MessageStream: m.MessageStream,
		TemplateID:    m.TemplateID,
		TemplateAlias: m.TemplateAlias,
		TemplateModel: m.TemplateModel,
		InlineCSS:     m.InlineCSS,
	})
}

// UnmarshalJSON decodes a message from its Postmark wire form.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = w.message()
	return nil
}

func (w wireMessage) message() Message {
	m := Message{
		From:          w.From,
		Subject:       w.Subject,
		Tag:           w.Tag,
		HTMLBody:      w.HTMLBody,
		TextBody:      w.TextBody,
		ReplyTo:       w.ReplyTo,
		Headers:       w.Headers,
		Attachments:   w.Attachments,
		TrackOpens:    w.TrackOpens,
		TrackLinks:    w.TrackLinks,
		Metadata:      w.Metadata,
		MessageStream: w.MessageStream,
		TemplateID:    w.TemplateID,
		TemplateAlias: w.TemplateAlias,
		TemplateModel: w.TemplateModel,
		InlineCSS:     w.InlineCSS,
	}
	if len(w.To) > 0 {
		m.To = []string(w.To)
	}
	if len(w.Cc) > 0 {
		m.Cc = []string(w.Cc)
	}
	if len(w.Bcc) > 0 {
		m.Bcc = []string(w.Bcc)
	}
	return m
}

// FromMap builds a message from a mapping keyed by Postmark field names
// (From, To, HtmlBody, ...). Unknown keys are rejected.
func FromMap(fields map[string]any) (Message, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var w wireMessage
	if err := dec.Decode(&w); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return w.message(), nil
}
