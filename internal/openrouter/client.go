package openrouter

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

const defaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "qwen/qwen3-235b-a22b:free"

// Client talks to the OpenRouter chat-completions API. It is consumed by
// prompt and response only; nothing deterministic depends on it.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// ChatParams carries the per-request configuration. The API key, model and
// language come from config and are threaded explicitly.
type ChatParams struct {
	APIKey   string
	Model    string
	Language string // "en" or "ko"
	Prompt   string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends a prompt and returns the assistant's text response.
func (c *Client) Chat(ctx context.Context, params ChatParams) (string, error) {
	if strings.TrimSpace(params.APIKey) == "" {
		return "", fmt.Errorf("openrouter api key is required")
	}

	model := params.Model
	if model == "" {
		model = DefaultModel
	}

	system := "You are a helpful YouTube content analysis assistant. Respond in English language."
	if params.Language == "ko" {
		system = "You are a helpful YouTube content analysis assistant. Respond in Korean language."
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: params.Prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+params.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "TubeScan")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		return "", fmt.Errorf("openrouter: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openrouter: empty response")
	}

	return out.Choices[0].Message.Content, nil
}
