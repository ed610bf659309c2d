package client

import (
	"net/http"
	"strconv"
	"strings"
)

// Endpoint describes one Postmark API route. Path may contain an {id}
// placeholder.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// Endpoints of the Postmark server API.
var (
	EndpointSend                  = Endpoint{"send", http.MethodPost, "/email"}
	EndpointSendBatch             = Endpoint{"send_batch", http.MethodPost, "/email/batch"}
	EndpointSendWithTemplate      = Endpoint{"send_with_template", http.MethodPost, "/email/withTemplate"}
	EndpointSendBatchWithTemplate = Endpoint{"send_batch_with_template", http.MethodPost, "/email/batchWithTemplates"}
	EndpointBounces               = Endpoint{"bounces", http.MethodGet, "/bounces"}
	EndpointBounce                = Endpoint{"bounce", http.MethodGet, "/bounces/{id}"}
	EndpointBounceDump            = Endpoint{"bounce_dump", http.MethodGet, "/bounces/{id}/dump"}
	EndpointBounceActivate        = Endpoint{"bounce_activate", http.MethodPut, "/bounces/{id}/activate"}
	EndpointBounceTags            = Endpoint{"bounce_tags", http.MethodGet, "/bounces/tags"}
	EndpointDeliveryStats         = Endpoint{"delivery_stats", http.MethodGet, "/deliverystats"}
)

// Endpoints lists every supported endpoint.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointSend,
		EndpointSendBatch,
		EndpointSendWithTemplate,
		EndpointSendBatchWithTemplate,
		EndpointBounces,
		EndpointBounce,
		EndpointBounceDump,
		EndpointBounceActivate,
		EndpointBounceTags,
		EndpointDeliveryStats,
	}
}

// WithID returns the endpoint path with {id} substituted.
func (e Endpoint) WithID(id int64) string {
	return strings.Replace(e.Path, "{id}", strconv.FormatInt(id, 10), 1)
}
