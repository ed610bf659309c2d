package bounce

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Types maps bounce type names to their Postmark type codes.
var Types = map[string]int{
	"HardBounce":            1,
	"Transient":             2,
	"Unsubscribe":           16,
	"Subscribe":             32,
	"AutoResponder":         64,
	"AddressChange":         128,
	"DnsError":              256,
	"SpamNotification":      512,
	"OpenRelayTest":         1024,
	"Unknown":               2048,
	"SoftBounce":            4096,
	"VirusNotification":     8192,
	"ChallengeVerification": 16384,
	"BadEmailAddress":       100000,
	"SpamComplaint":         100001,
	"ManuallyDeactivated":   100002,
	"Unconfirmed":           100003,
	"Blocked":               100006,
	"SMTPApiError":          100007,
	"InboundError":          100008,
}

// ValidType reports whether name is a known bounce type.
func ValidType(name string) bool {
	_, ok := Types[name]
	return ok
}

// TypeNames returns the known bounce type names, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(Types))
	for name := range Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paging defaults and limits of the bounces endpoint.
const (
	DefaultCount = 25
	MaxCount     = 500
)

// Bounce is a delivery failure record reported by Postmark. BouncedAtRaw keeps
// the timestamp as sent; BouncedAt stays zero when it can't be parsed.
type Bounce struct {
	ID            int64     `json:"ID"`
	Type          string    `json:"Type"`
	TypeCode      int       `json:"TypeCode"`
	Name          string    `json:"Name"`
	Tag           string    `json:"Tag"`
	MessageID     string    `json:"MessageID"`
	ServerID      int64     `json:"ServerID"`
	Description   string    `json:"Description"`
	Details       string    `json:"Details"`
	Email         string    `json:"Email"`
	From          string    `json:"From"`
	BouncedAt     time.Time `json:"BouncedAt"`
	DumpAvailable bool      `json:"DumpAvailable"`
	Inactive      bool      `json:"Inactive"`
	CanActivate   bool      `json:"CanActivate"`
	Subject       string    `json:"Subject"`
	Content       string    `json:"Content"`
	MessageStream string    `json:"MessageStream"`
	BouncedAtRaw  string    `json:"-"`
}

// bouncedAtLayouts are tried in order. The API has returned timestamps both
// with and without a zone offset.
var bouncedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// UnmarshalJSON decodes a bounce, parsing BouncedAt leniently so that an
// unexpected timestamp doesn't fail the whole record.
func (b *Bounce) UnmarshalJSON(data []byte) error {
	type plain Bounce
	var w struct {
		plain
		BouncedAt string `json:"BouncedAt"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*b = Bounce(w.plain)
	b.BouncedAtRaw = w.BouncedAt
	b.BouncedAt = time.Time{}
	for _, layout := range bouncedAtLayouts {
		if ts, err := time.Parse(layout, w.BouncedAt); err == nil {
			b.BouncedAt = ts
			break
		}
	}
	return nil
}

// ListParams filters a bounce listing. Pages are fetched by the caller:
// advance Offset by Count until it reaches the reported total.
type ListParams struct {
	// Type is a key of Types.
	Type     string
	Inactive *bool
	// EmailFilter matches a substring of the bounced address.
	EmailFilter   string
	Tag           string
	MessageID     string
	MessageStream string
	FromDate      time.Time
	ToDate        time.Time

	// Count and Offset default to DefaultCount and 0 unless MessageID is set,
	// in which case they are only sent when given.
	Count  int
	Offset int
}

// Values builds the query string of the bounces endpoint.
func (p ListParams) Values() (url.Values, error) {
	v := url.Values{}

	if p.Type != "" {
		if !ValidType(p.Type) {
			return nil, fmt.Errorf("%w: %w: %q", ErrBounce, ErrInvalidType, p.Type)
		}
		v.Set("type", p.Type)
	}
	if p.Inactive != nil {
		v.Set("inactive", strconv.FormatBool(*p.Inactive))
	}
	if p.EmailFilter != "" {
		v.Set("emailFilter", p.EmailFilter)
	}
	if p.Tag != "" {
		v.Set("tag", p.Tag)
	}
	if p.MessageStream != "" {
		v.Set("messagestream", p.MessageStream)
	}
	if !p.FromDate.IsZero() {
		v.Set("fromdate", p.FromDate.Format(time.DateOnly))
	}
	if !p.ToDate.IsZero() {
		v.Set("todate", p.ToDate.Format(time.DateOnly))
	}

	if p.Count < 0 || p.Count > MaxCount {
		return nil, fmt.Errorf("%w: %w: %d, must be between 1 and %d", ErrBounce, ErrInvalidCount, p.Count, MaxCount)
	}
	if p.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrBounce)
	}

	count, offset := p.Count, p.Offset
	if p.MessageID == "" {
		if count == 0 {
			count = DefaultCount
		}
		v.Set("count", strconv.Itoa(count))
		v.Set("offset", strconv.Itoa(offset))
		return v, nil
	}

	v.Set("messageID", p.MessageID)
	if count > 0 {
		v.Set("count", strconv.Itoa(count))
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
	return v, nil
}

// CheckID rejects ids that can't belong to a bounce.
func CheckID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %w: %d", ErrBounce, ErrInvalidID, id)
	}
	return nil
}
