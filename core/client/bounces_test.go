package client_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postmark/core/bounce"
	"github.com/dmitrymomot/postmark/core/client"
	"github.com/dmitrymomot/postmark/core/response"
)

func TestClient_Bounces(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bounces", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "HardBounce", q.Get("type"))
		assert.Equal(t, "false", q.Get("inactive"))
		assert.Equal(t, "example.com", q.Get("emailFilter"))
		assert.Equal(t, "50", q.Get("count"))
		assert.Equal(t, "100", q.Get("offset"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"TotalCount": 251,
			"Bounces": []map[string]any{{
				"ID":            692560173,
				"Type":          "HardBounce",
				"TypeCode":      1,
				"Email":         "jim@example.com",
				"BouncedAt":     "2026-10-01T10:00:00Z",
				"DumpAvailable": true,
				"Inactive":      false,
				"CanActivate":   true,
			}},
		})
	})

	inactive := false
	resp, err := c.Bounces(t.Context(), bounce.ListParams{
		Type:        "HardBounce",
		Inactive:    &inactive,
		EmailFilter: "example.com",
		Count:       50,
		Offset:      100,
	})
	require.NoError(t, err)
	require.NoError(t, resp.RaiseForStatus())
	assert.Equal(t, 251, resp.Total)
	require.Len(t, resp.Bounces, 1)
	assert.Equal(t, int64(692560173), resp.Bounces[0].ID)
	assert.Equal(t, "jim@example.com", resp.Bounces[0].Email)
	assert.Equal(t, time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC), resp.Bounces[0].BouncedAt)
}

func TestClient_Bounces_DefaultPaging(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "25", q.Get("count"))
		assert.Equal(t, "0", q.Get("offset"))
		writeJSON(t, w, http.StatusOK, map[string]any{"TotalCount": 0, "Bounces": []any{}})
	})

	resp, err := c.Bounces(t.Context(), bounce.ListParams{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Bounces)
}

func TestClient_Bounces_ByMessageID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "b7bc2f4a-e38e-4336-af7d-e6c392c2f817", q.Get("messageID"))
		assert.False(t, q.Has("count"))
		assert.False(t, q.Has("offset"))
		writeJSON(t, w, http.StatusOK, map[string]any{"TotalCount": 0, "Bounces": []any{}})
	})

	_, err := c.Bounces(t.Context(), bounce.ListParams{MessageID: "b7bc2f4a-e38e-4336-af7d-e6c392c2f817"})
	require.NoError(t, err)
}

func TestClient_Bounce(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bounces/42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"ID": 42, "Type": "SoftBounce", "Email": "a@example.com"})
	})

	resp, err := c.Bounce(t.Context(), 42)
	require.NoError(t, err)
	require.NotNil(t, resp.Bounce)
	assert.Equal(t, int64(42), resp.Bounce.ID)
	assert.Equal(t, "SoftBounce", resp.Bounce.Type)
}

func TestClient_Bounce_NotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{"ErrorCode": 701, "Message": "This bounce was not found."})
	})

	resp, err := c.Bounce(t.Context(), 42)
	require.NoError(t, err)
	assert.Nil(t, resp.Bounce)

	err = resp.RaiseForStatus()
	require.ErrorIs(t, err, response.ErrUnprocessableEntity)
	assert.EqualError(t, err, "This bounce was not found. [ErrorCode 701]")
}

func TestClient_BounceDump(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bounces/42/dump", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"Body": "Return-Path: <>\r\n"})
	})

	resp, err := c.BounceDump(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Return-Path: <>\r\n", resp.Dump)
}

func TestClient_ActivateBounce(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/bounces/42/activate", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"Message": "OK",
			"Bounce":  map[string]any{"ID": 42, "Inactive": false},
		})
	})

	resp, err := c.ActivateBounce(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Message)
	require.NotNil(t, resp.Bounce)
	assert.False(t, resp.Bounce.Inactive)
}

func TestClient_BounceTags(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bounces/tags", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []string{"welcome", "invoice"})
	})

	resp, err := c.BounceTags(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome", "invoice"}, resp.Tags)
}

func TestClient_DeliveryStats(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deliverystats", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"InactiveMails": 192,
			"Bounces": []map[string]any{
				{"Name": "All", "Count": 253},
				{"Type": "HardBounce", "Name": "Hard bounce", "Count": 195},
				{"Type": "Transient", "Name": "Message delayed", "Count": 58},
			},
		})
	})

	resp, err := c.DeliveryStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 192, resp.Inactive)
	assert.Equal(t, 253, resp.Total)
	assert.Equal(t, 195, resp.ByType["HardBounce"].Count)
	assert.Equal(t, 253, resp.ByType[bounce.AllTypes].Count)
}

func TestClient_BounceValidation(t *testing.T) {
	t.Parallel()

	hc := &mockHTTPClient{}
	c, err := client.New(client.Config{ServerToken: "token"}, client.WithHTTPClient(hc))
	require.NoError(t, err)

	_, err = c.Bounce(t.Context(), 0)
	require.ErrorIs(t, err, bounce.ErrInvalidID)
	_, err = c.BounceDump(t.Context(), -1)
	require.ErrorIs(t, err, bounce.ErrInvalidID)
	_, err = c.ActivateBounce(t.Context(), 0)
	require.ErrorIs(t, err, bounce.ErrInvalidID)
	_, err = c.Bounces(t.Context(), bounce.ListParams{Type: "NotAType"})
	require.ErrorIs(t, err, bounce.ErrInvalidType)
	_, err = c.Bounces(t.Context(), bounce.ListParams{Count: bounce.MaxCount + 1})
	require.ErrorIs(t, err, bounce.ErrInvalidCount)

	hc.AssertNotCalled(t, "Do", mock.Anything)
}

func TestClient_Bounce_DecodeFailures(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bounces/1":
			writeJSON(t, w, http.StatusOK, map[string]any{"ID": 1, "BouncedAt": "2014-01-15T16:09:19", "CanActivate": true})
		default:
			writeJSON(t, w, http.StatusOK, map[string]any{"ID": "not a number"})
		}
	})

	resp, err := c.Bounce(t.Context(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp.Bounce)
	assert.True(t, resp.Bounce.CanActivate)
	assert.Equal(t, 2014, resp.Bounce.BouncedAt.Year())

	resp, err = c.Bounce(t.Context(), 2)
	require.ErrorIs(t, err, response.ErrInvalidBody)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Bounce)
}
