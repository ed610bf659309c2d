package bounce

import (
	"github.com/dmitrymomot/postmark/core/response"
)

// The constructors below decode only 2xx bodies; an error body is left for
// RaiseForStatus. A 2xx body that can't be decoded returns the wrapper with
// whatever was decoded and an error matching response.ErrInvalidBody.

// ListResponse wraps a page of bounces. Total counts every matching bounce,
// not only the ones on this page.
type ListResponse struct {
	*response.Response
	Total   int
	Bounces []Bounce
}

// NewListResponse decodes a bounce listing.
func NewListResponse(r *response.Response) (*ListResponse, error) {
	out := &ListResponse{Response: r}
	if !r.OK() {
		return out, nil
	}
	var body struct {
		TotalCount int      `json:"TotalCount"`
		Bounces    []Bounce `json:"Bounces"`
	}
	err := r.Decode(&body)
	out.Total, out.Bounces = body.TotalCount, body.Bounces
	return out, err
}

// GetResponse wraps a single bounce. Bounce is nil unless a 2xx body was decoded.
type GetResponse struct {
	*response.Response
	Bounce *Bounce
}

// NewGetResponse decodes a single bounce.
func NewGetResponse(r *response.Response) (*GetResponse, error) {
	out := &GetResponse{Response: r}
	if !r.OK() {
		return out, nil
	}
	var b Bounce
	if err := r.Decode(&b); err != nil {
		return out, err
	}
	out.Bounce = &b
	return out, nil
}

// DumpResponse wraps the raw SMTP source of a bounced message.
type DumpResponse struct {
	*response.Response
	Dump string
}

// NewDumpResponse decodes a bounce dump.
func NewDumpResponse(r *response.Response) (*DumpResponse, error) {
	out := &DumpResponse{Response: r}
	if !r.OK() {
		return out, nil
	}
	var body struct {
		Body string `json:"Body"`
	}
	err := r.Decode(&body)
	out.Dump = body.Body
	return out, err
}

// TagsResponse wraps the tags that have bounces on the server.
type TagsResponse struct {
	*response.Response
	Tags []string
}

// NewTagsResponse decodes bounce tags.
func NewTagsResponse(r *response.Response) (*TagsResponse, error) {
	out := &TagsResponse{Response: r}
	if !r.OK() {
		return out, nil
	}
	return out, r.Decode(&out.Tags)
}

// ActivateResponse wraps the result of reactivating a bounce.
type ActivateResponse struct {
	*response.Response
	Message string
	Bounce  *Bounce
}

// NewActivateResponse decodes a bounce activation result.
func NewActivateResponse(r *response.Response) (*ActivateResponse, error) {
	out := &ActivateResponse{Response: r}
	if !r.OK() {
		return out, nil
	}
	var body struct {
		Message string  `json:"Message"`
		Bounce  *Bounce `json:"Bounce"`
	}
	err := r.Decode(&body)
	out.Message, out.Bounce = body.Message, body.Bounce
	return out, err
}

// TypeCount is the number of bounces of one type.
type TypeCount struct {
	Name  string `json:"Name"`
	Type  string `json:"Type"`
	Count int    `json:"Count"`
}

// AllTypes keys the aggregate entry in StatsResponse.ByType.
const AllTypes = "All"

// StatsResponse wraps aggregate delivery statistics.
type StatsResponse struct {
	*response.Response
	Inactive int
	Total    int
	ByType   map[string]TypeCount
}

// NewStatsResponse decodes delivery statistics. The entry without a Type is
// the aggregate over all types and provides Total.
func NewStatsResponse(r *response.Response) (*StatsResponse, error) {
	out := &StatsResponse{Response: r, ByType: map[string]TypeCount{}}
	if !r.OK() {
		return out, nil
	}
	var body struct {
		InactiveMails int         `json:"InactiveMails"`
		Bounces       []TypeCount `json:"Bounces"`
	}
	err := r.Decode(&body)

	out.Inactive = body.InactiveMails
	for _, tc := range body.Bounces {
		if tc.Type == "" {
			tc.Type = AllTypes
		}
		out.ByType[tc.Type] = tc
		if tc.Type == AllTypes {
			out.Total = tc.Count
		}
	}
	return out, err
}
