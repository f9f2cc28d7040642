package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMResponderSendsKnowledgeAsSystemPrompt(t *testing.T) {
	var got struct {
		Model    string       `json:"model"`
		Messages []llmMessage `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": llmMessage{Role: "assistant", Content: "grounded answer"}},
			},
		})
	}))
	defer srv.Close()

	l := NewLLMResponder(srv.URL, "test-key", "test-model", "KNOWLEDGE TEXT")
	reply, err := l.Reply(context.Background(), "who is this?")
	require.NoError(t, err)
	assert.Equal(t, "grounded answer", reply)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "KNOWLEDGE TEXT")
	assert.Equal(t, "who is this?", got.Messages[1].Content)
}

func TestLLMResponderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	l := NewLLMResponder(srv.URL, "", "m", "k")
	_, err := l.Reply(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}
