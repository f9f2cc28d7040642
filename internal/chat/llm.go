package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LLMResponder answers through an OpenAI-compatible chat-completions API,
// seeding every call with the knowledge base as the system prompt.
type LLMResponder struct {
	baseURL    string
	apiKey     string
	model      string
	knowledge  string
	httpClient *http.Client
}

func NewLLMResponder(baseURL, apiKey, model, knowledge string) *LLMResponder {
	return &LLMResponder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		knowledge:  knowledge,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (l *LLMResponder) Reply(ctx context.Context, message string) (string, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"model": l.model,
		"messages": []llmMessage{
			{Role: "system", Content: "You answer visitor questions about this portfolio. " +
				"Ground every answer in the following profile and say so when something " +
				"is not covered by it.\n\n" + l.knowledge},
			{Role: "user", Content: message},
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		l.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if l.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.apiKey)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm /chat/completions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstream, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm /chat/completions returned %d: %s", resp.StatusCode, string(upstream))
	}

	var result struct {
		Choices []struct {
			Message llmMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("llm /chat/completions: decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("llm /chat/completions: empty choices")
	}
	return result.Choices[0].Message.Content, nil
}
