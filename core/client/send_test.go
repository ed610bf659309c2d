package client_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	pm "github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postmark/core/client"
	"github.com/dmitrymomot/postmark/core/message"
	"github.com/dmitrymomot/postmark/core/response"
)

func scenarioMessage() message.Message {
	return message.Message{
		From:     "me@example.com",
		To:       []string{"you@example.com"},
		Subject:  "Hi",
		TextBody: "A message",
	}
}

func confirmation(to string) map[string]any {
	return map[string]any{
		"ErrorCode":   0,
		"Message":     "OK",
		"MessageID":   uuid.NewString(),
		"SubmittedAt": "2026-10-18T09:30:00.000Z",
		"To":          to,
	}
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "server-token", r.Header.Get("X-Postmark-Server-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, http.StatusOK, confirmation("you@example.com"))
	})

	resp, err := c.Send(t.Context(), scenarioMessage())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"From":     "me@example.com",
		"To":       "you@example.com",
		"Subject":  "Hi",
		"TextBody": "A message",
	}, payload)

	require.NoError(t, resp.RaiseForStatus())
	assert.True(t, resp.Confirmation.OK())
	assert.Equal(t, "OK", resp.Confirmation.Message)
	assert.Equal(t, "you@example.com", resp.Confirmation.To)
	assert.Equal(t, time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC), resp.Confirmation.SubmittedAt)

	id, err := resp.Confirmation.UUID()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestClient_Send_ErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
		wantMsg  string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"ErrorCode":10,"Message":"Bad or missing Server API token."}`,
			wantKind: response.ErrUnauthorized,
			wantMsg:  "Bad or missing Server API token. [ErrorCode 10]",
		},
		{
			name:     "unprocessable",
			status:   http.StatusUnprocessableEntity,
			body:     `{"ErrorCode":300,"Message":"Invalid email request"}`,
			wantKind: response.ErrUnprocessableEntity,
			wantMsg:  "Invalid email request [ErrorCode 300]",
		},
		{
			name:     "internal error with html body",
			status:   http.StatusInternalServerError,
			body:     `<html>oops</html>`,
			wantKind: response.ErrInternalServer,
			wantMsg:  "postmark: not a valid JSON response, status: 500",
		},
		{
			name:     "other status",
			status:   http.StatusServiceUnavailable,
			body:     `{"ErrorCode":1,"Message":"down"}`,
			wantKind: response.ErrResponse,
			wantMsg:  "down [ErrorCode 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			resp, err := c.Send(t.Context(), scenarioMessage())
			require.NoError(t, err, "HTTP errors are deferred to RaiseForStatus")
			assert.Equal(t, tt.status, resp.StatusCode)

			err = resp.RaiseForStatus()
			require.ErrorIs(t, err, tt.wantKind)
			require.ErrorIs(t, err, response.ErrResponse)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestClient_Send_ValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	hc := &mockHTTPClient{}
	c, err := client.New(client.Config{ServerToken: "token"}, client.WithHTTPClient(hc))
	require.NoError(t, err)

	tooMany := scenarioMessage()
	tooMany.To = make([]string, message.MaxRecipients+1)
	for i := range tooMany.To {
		tooMany.To[i] = fmt.Sprintf("user%d@example.com", i)
	}

	noBody := scenarioMessage()
	noBody.TextBody = ""

	template := scenarioMessage()
	template.TemplateID = 42

	for _, msg := range []message.Message{tooMany, noBody, template} {
		_, err := c.Send(t.Context(), msg)
		require.ErrorIs(t, err, message.ErrInvalidMessage)
	}

	_, err = c.SendWithTemplate(t.Context(), scenarioMessage())
	require.ErrorIs(t, err, message.ErrMissingTemplate)

	hc.AssertNotCalled(t, "Do", mock.Anything)
}

func TestClient_Send_Defaults(t *testing.T) {
	t.Parallel()

	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, confirmation("you@example.com"))
	}, client.WithDefaults(message.Message{
		From:          "noreply@example.com",
		ReplyTo:       "support@example.com",
		MessageStream: "outbound",
		Subject:       "ignored",
	}))

	_, err := c.Send(t.Context(), message.Message{
		To:       []string{"you@example.com"},
		Subject:  "Hi",
		HTMLBody: "<p>Hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@example.com", got["From"])
	assert.Equal(t, "support@example.com", got["ReplyTo"])
	assert.Equal(t, "outbound", got["MessageStream"])
	assert.Equal(t, "Hi", got["Subject"])
	assert.Equal(t, "<p>Hi</p>", got["HtmlBody"])
}

func TestClient_Send_CallOptions(t *testing.T) {
	t.Parallel()

	hc := &mockHTTPClient{}
	hc.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		_, hasDeadline := req.Context().Deadline()
		return hasDeadline &&
			req.Header.Get("X-Postmark-Server-Token") == "other-server" &&
			req.Header.Get("X-Request-Id") == "abc" &&
			req.URL.Query().Get("trace") == "1"
	})).Return(&http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(stringsReader(`{"ErrorCode":0,"MessageID":"x"}`)),
	}, nil).Once()

	c, err := client.New(client.Config{ServerToken: "token"}, client.WithHTTPClient(hc))
	require.NoError(t, err)

	resp, err := c.Send(t.Context(), scenarioMessage(),
		client.WithHeader("X-Request-Id", "abc"),
		client.WithHeader("X-Postmark-Server-Token", "ignored"),
		client.WithQuery("trace", "1"),
		client.WithServerTokenOverride("other-server"),
		client.WithTimeout(time.Second),
	)
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Confirmation.Message)
	hc.AssertExpectations(t)
}

func TestClient_Send_TestMode(t *testing.T) {
	t.Parallel()

	var token string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-Postmark-Server-Token")
		writeJSON(t, w, http.StatusOK, confirmation("you@example.com"))
	}, client.WithTestMode())

	_, err := c.Send(t.Context(), scenarioMessage())
	require.NoError(t, err)
	assert.Equal(t, client.TestServerToken, token)
}

func TestClient_SendWithTemplate(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email/withTemplate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, http.StatusOK, confirmation("you@example.com"))
	}, client.WithDefaults(message.Message{From: "me@example.com", Subject: "not inherited"}))

	resp, err := c.SendWithTemplate(t.Context(), message.Message{
		To:            []string{"you@example.com"},
		TemplateAlias: "welcome",
		TemplateModel: map[string]any{"name": "Ann"},
	})
	require.NoError(t, err)
	require.NoError(t, resp.RaiseForStatus())

	assert.Equal(t, "me@example.com", payload["From"])
	assert.Equal(t, "welcome", payload["TemplateAlias"])
	assert.Equal(t, map[string]any{"name": "Ann"}, payload["TemplateModel"])
	assert.NotContains(t, payload, "Subject")
}

func TestClient_SendBatch(t *testing.T) {
	t.Parallel()

	const n = 3
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email/batch", r.URL.Path)

		var emails []pm.Email
		require.NoError(t, json.NewDecoder(r.Body).Decode(&emails))

		results := make([]map[string]any, len(emails))
		for i, e := range emails {
			results[i] = confirmation(e.To)
		}
		results[1]["ErrorCode"] = 406
		results[1]["Message"] = "You tried to send to a recipient that has been marked as inactive."
		writeJSON(t, w, http.StatusOK, results)
	})

	msgs := make([]message.Message, n)
	for i := range msgs {
		msgs[i] = scenarioMessage()
		msgs[i].To = []string{fmt.Sprintf("user%d@example.com", i)}
	}

	resp, err := c.SendBatch(t.Context(), msgs)
	require.NoError(t, err)
	require.NoError(t, resp.RaiseForStatus())
	require.Len(t, resp.Results, n)
	for i, r := range resp.Results {
		assert.Equal(t, fmt.Sprintf("user%d@example.com", i), r.To)
	}

	assert.Equal(t, []int{1}, resp.Failed())
	err = resp.Err()
	require.ErrorIs(t, err, response.ErrUnprocessableEntity)

	var perr *response.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 406, perr.ErrorCode)
}

func TestClient_SendBatch_Limits(t *testing.T) {
	t.Parallel()

	hc := &mockHTTPClient{}
	c, err := client.New(client.Config{ServerToken: "token"}, client.WithHTTPClient(hc))
	require.NoError(t, err)

	_, err = c.SendBatch(t.Context(), nil)
	require.ErrorIs(t, err, client.ErrNoMessages)
	require.ErrorIs(t, err, message.ErrInvalidMessage)

	tooMany := make([]message.Message, client.MaxBatchMessages+1)
	for i := range tooMany {
		tooMany[i] = scenarioMessage()
	}
	_, err = c.SendBatch(t.Context(), tooMany)
	require.ErrorIs(t, err, client.ErrTooManyMessages)
	require.ErrorIs(t, err, message.ErrInvalidMessage)

	_, err = c.SendBatchWithTemplate(t.Context(), tooMany)
	require.ErrorIs(t, err, client.ErrTooManyMessages)

	invalid := []message.Message{scenarioMessage(), {To: []string{"x@example.com"}}}
	_, err = c.SendBatch(t.Context(), invalid)
	require.ErrorIs(t, err, message.ErrMissingBody)
	assert.Contains(t, err.Error(), "message 1")

	hc.AssertNotCalled(t, "Do", mock.Anything)
}

func TestClient_SendBatch_MaxSize(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var emails []pm.Email
		require.NoError(t, json.NewDecoder(r.Body).Decode(&emails))
		results := make([]map[string]any, len(emails))
		for i, e := range emails {
			results[i] = confirmation(e.To)
		}
		writeJSON(t, w, http.StatusOK, results)
	})

	msgs := make([]message.Message, client.MaxBatchMessages)
	for i := range msgs {
		msgs[i] = scenarioMessage()
		msgs[i].To = []string{fmt.Sprintf("user%d@example.com", i)}
	}

	resp, err := c.SendBatch(t.Context(), msgs)
	require.NoError(t, err)
	require.Len(t, resp.Results, client.MaxBatchMessages)
	assert.Equal(t, "user499@example.com", resp.Results[499].To)
	assert.Empty(t, resp.Failed())
	assert.NoError(t, resp.Err())
}

func TestClient_SendBatch_ResultCountMismatch(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{confirmation("a@example.com")})
	})

	resp, err := c.SendBatch(t.Context(), []message.Message{scenarioMessage(), scenarioMessage()})
	require.ErrorIs(t, err, client.ErrResultCountMismatch)
	require.NotNil(t, resp)
	assert.Len(t, resp.Results, 1)
}

func TestClient_SendBatch_ErrorStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"ErrorCode": 10, "Message": "Bad token"})
	})

	resp, err := c.SendBatch(t.Context(), []message.Message{scenarioMessage()})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.ErrorIs(t, resp.RaiseForStatus(), response.ErrUnauthorized)
}

func TestClient_SendBatchWithTemplate(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email/batchWithTemplates", r.URL.Path)

		var body struct {
			Messages []map[string]any `json:"Messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 2)
		assert.Equal(t, float64(7), body.Messages[0]["TemplateId"])
		assert.Equal(t, "receipt", body.Messages[1]["TemplateAlias"])

		writeJSON(t, w, http.StatusOK, []map[string]any{
			confirmation("a@example.com"),
			confirmation("b@example.com"),
		})
	})

	resp, err := c.SendBatchWithTemplate(t.Context(), []message.Message{
		{From: "me@example.com", To: []string{"a@example.com"}, TemplateID: 7},
		{From: "me@example.com", To: []string{"b@example.com"}, TemplateAlias: "receipt"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "b@example.com", resp.Results[1].To)
}

func TestClient_SendWithTemplate_MixedDefaults(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload = nil
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, http.StatusOK, confirmation("you@example.com"))
	}, client.WithDefaults(message.Message{
		From:          "me@example.com",
		Subject:       "Hello",
		TextBody:      "fallback body",
		TemplateAlias: "welcome",
	}))

	_, err := c.SendWithTemplate(t.Context(), message.Message{To: []string{"you@example.com"}})
	require.NoError(t, err)
	assert.Equal(t, "welcome", payload["TemplateAlias"])
	assert.NotContains(t, payload, "Subject")
	assert.NotContains(t, payload, "TextBody")

	_, err = c.Send(t.Context(), message.Message{To: []string{"you@example.com"}})
	require.NoError(t, err)
	assert.Equal(t, "fallback body", payload["TextBody"])
	assert.NotContains(t, payload, "TemplateAlias")
}
