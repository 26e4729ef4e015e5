package classifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/logging"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletionBody(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "llama-3.3-70b-versatile",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
	return string(body)
}

// newCompletionServer starts a fake OpenAI-compatible endpoint.
func newCompletionServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Complete(t *testing.T) {
	var captured openai.ChatCompletionRequest
	var authHeader, path string
	srv := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatCompletionBody(financeiroReply))
	})

	client := NewOpenAIClient("groq", "gsk_test_key", "llama-3.3-70b-versatile", srv.URL, logging.NewMockLogger())
	assert.Equal(t, "groq", client.Provider())
	assert.Equal(t, "llama-3.3-70b-versatile", client.Model())

	reply, err := client.Complete(context.Background(), CompletionRequest{
		System:      "system prompt",
		User:        honorariosMessage,
		Temperature: 0.2,
		MaxTokens:   64,
		JSONMode:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, financeiroReply, reply)

	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "Bearer gsk_test_key", authHeader)
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, honorariosMessage, captured.Messages[1].Content)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, captured.ResponseFormat.Type)
	assert.Equal(t, 64, captured.MaxTokens)
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		expectedKind error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, `{"error": {"message": "boom", "type": "server_error"}}`)
			},
			expectedKind: classifiererror.ErrAITransport,
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`)
			},
			expectedKind: classifiererror.ErrAITransport,
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"id": "x", "object": "chat.completion", "choices": []}`)
			},
			expectedKind: classifiererror.ErrAIResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newCompletionServer(t, tt.handler)
			client := NewOpenAIClient("openai", "sk-test", "gpt-4o-mini", srv.URL, logging.NewMockLogger())

			_, err := client.Complete(context.Background(), CompletionRequest{System: "s", User: "u"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedKind)
		})
	}
}

func TestOpenAIClient_ContextDeadline(t *testing.T) {
	srv := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	client := NewOpenAIClient("groq", "gsk_test_key", "llama", srv.URL, logging.NewMockLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, CompletionRequest{System: "s", User: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, classifiererror.ErrAITransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
