package message

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MaxRecipients is the Postmark limit for To, Cc and Bcc combined.
const MaxRecipients = 20

// Header is a custom email header sent with the message.
type Header struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// Message is one email. Zero-valued fields are treated as unset: they are
// omitted from the wire form and can be filled from defaults with Merge.
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Tag         string
	HTMLBody    string
	TextBody    string
	ReplyTo     string
	Headers     []Header
	Attachments []Attachment

	// TrackOpens is a pointer so an explicit false survives a merge with defaults.
	TrackOpens *bool
	// TrackLinks is one of None, HtmlAndText, HtmlOnly, TextOnly.
	TrackLinks    string
	Metadata      map[string]string
	MessageStream string

	// Template fields are only valid for the template endpoints.
	TemplateID    int64
	TemplateAlias string
	TemplateModel map[string]any
	InlineCSS     *bool
}

// Recipients returns To, Cc and Bcc addresses in that order.
func (m Message) Recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	return append(out, m.Bcc...)
}

func (m Message) hasLiteral() bool {
	return m.Subject != "" || m.HTMLBody != "" || m.TextBody != ""
}

// UsesTemplate reports whether a template id or alias is set.
func (m Message) UsesTemplate() bool {
	return m.TemplateID != 0 || m.TemplateAlias != ""
}

// Validate checks the message against the rules of the plain send endpoints.
// Attachment size (10MB per file) is not checked.
func (m Message) Validate() error {
	if m.UsesTemplate() || len(m.TemplateModel) > 0 {
		return fmt.Errorf("%w: %w: use a template send for template fields", ErrInvalidMessage, ErrTemplateConflict)
	}
	if m.HTMLBody == "" && m.TextBody == "" {
		return fmt.Errorf("%w: %w: at least one of HTMLBody or TextBody must be provided", ErrInvalidMessage, ErrMissingBody)
	}
	return m.validateCommon()
}

// ValidateTemplate checks the message against the rules of the template send
// endpoints: exactly one of TemplateID or TemplateAlias, and no literal
// subject or body.
func (m Message) ValidateTemplate() error {
	literal := m.hasLiteral()
	switch {
	case m.TemplateID != 0 && m.TemplateAlias != "":
		return fmt.Errorf("%w: %w: set TemplateID or TemplateAlias, not both", ErrInvalidMessage, ErrTemplateConflict)
	case m.UsesTemplate() && literal:
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrTemplateConflict)
	case !m.UsesTemplate():
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrMissingTemplate)
	}
	return m.validateCommon()
}

func (m Message) validateCommon() error {
	if len(m.To) == 0 {
		return fmt.Errorf("%w: %w: To is required", ErrInvalidMessage, ErrMissingRecipient)
	}
	for _, addr := range m.Recipients() {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("%w: %w: empty address in recipients", ErrInvalidMessage, ErrMissingRecipient)
		}
	}
	if n := len(m.Recipients()); n > MaxRecipients {
		return fmt.Errorf("%w: %w: got %d, no more than %d accepted", ErrInvalidMessage, ErrTooManyRecipients, n, MaxRecipients)
	}
	if err := validateHeaders(m.Headers); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	for _, a := range m.Attachments {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
		}
	}
	return nil
}

func validateHeaders(headers []Header) error {
	seen := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		if h.Name == "" {
			return fmt.Errorf("%w: header must contain a name", ErrInvalidHeader)
		}
		key := strings.ToLower(h.Name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate header %q", ErrInvalidHeader, h.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// SetHeader sets a custom header, replacing any header with the same name.
// Header names are compared case-insensitively.
func (m *Message) SetHeader(name, value string) {
	for i, h := range m.Headers {
		if strings.EqualFold(h.Name, name) {
			m.Headers[i] = Header{Name: name, Value: value}
			return
		}
	}
	m.Headers = append(m.Headers, Header{Name: name, Value: value})
}

// Merge returns a copy of m where every unset field is taken from defaults.
// Neither m nor defaults is modified. Literal content (Subject, HTMLBody,
// TextBody) is not inherited by a template message, and template fields are
// not inherited by a message with literal content. A message with neither
// inherits only the literal content of defaults; use MergeTemplate for the
// template endpoints.
func (m Message) Merge(defaults Message) Message {
	return m.merge(defaults, false)
}

// MergeTemplate is like Merge, except that a message with neither literal nor
// template content inherits the template fields of defaults when they name a
// template.
func (m Message) MergeTemplate(defaults Message) Message {
	return m.merge(defaults, true)
}

func (m Message) merge(defaults Message, preferTemplate bool) Message {
	out := m.clone()
	d := defaults.clone()

	useTemplate := m.UsesTemplate()
	useLiteral := m.hasLiteral()
	if !useTemplate && !useLiteral {
		if preferTemplate && d.UsesTemplate() {
			useTemplate = true
		} else {
			useLiteral = true
		}
	}
	if useTemplate {
		d.Subject, d.HTMLBody, d.TextBody = "", "", ""
	}
	if useLiteral {
		d.TemplateID, d.TemplateAlias, d.TemplateModel, d.InlineCSS = 0, "", nil, nil
	}

	if out.From == "" {
		out.From = d.From
	}
	if len(out.To) == 0 {
		out.To = d.To
	}
	if len(out.Cc) == 0 {
		out.Cc = d.Cc
	}
	if len(out.Bcc) == 0 {
		out.Bcc = d.Bcc
	}
	if out.Subject == "" {
		out.Subject = d.Subject
	}
	if out.Tag == "" {
		out.Tag = d.Tag
	}
	if out.HTMLBody == "" {
		out.HTMLBody = d.HTMLBody
	}
	if out.TextBody == "" {
		out.TextBody = d.TextBody
	}
	if out.ReplyTo == "" {
		out.ReplyTo = d.ReplyTo
	}
	if len(out.Headers) == 0 {
		out.Headers = d.Headers
	}
	if len(out.Attachments) == 0 {
		out.Attachments = d.Attachments
	}
	if out.TrackOpens == nil {
		out.TrackOpens = d.TrackOpens
	}
	if out.TrackLinks == "" {
		out.TrackLinks = d.TrackLinks
	}
	if len(out.Metadata) == 0 {
		out.Metadata = d.Metadata
	}
	if out.MessageStream == "" {
		out.MessageStream = d.MessageStream
	}
	if out.TemplateID == 0 && out.TemplateAlias == "" {
		out.TemplateID = d.TemplateID
		out.TemplateAlias = d.TemplateAlias
	}
	if len(out.TemplateModel) == 0 {
		out.TemplateModel = d.TemplateModel
	}
	if out.InlineCSS == nil {
		out.InlineCSS = d.InlineCSS
	}
	return out
}

// clone copies slices, maps and pointers so the result shares no mutable state.
func (m Message) clone() Message {
	m.To = slices.Clone(m.To)
	m.Cc = slices.Clone(m.Cc)
	m.Bcc = slices.Clone(m.Bcc)
	m.Headers = slices.Clone(m.Headers)
	m.Attachments = slices.Clone(m.Attachments)
	m.Metadata = maps.Clone(m.Metadata)
	m.TemplateModel = maps.Clone(m.TemplateModel)
	if m.TrackOpens != nil {
		v := *m.TrackOpens
		m.TrackOpens = &v
	}
	if m.InlineCSS != nil {
		v := *m.InlineCSS
		m.InlineCSS = &v
	}
	return m
}
