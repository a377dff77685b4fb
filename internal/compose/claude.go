// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/post-engine/pkg/types"
)

// claudeAPIURL is the Claude API endpoint. Package-level var for test
// substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// claudeBackend calls the Claude Messages API with a single user message.
type claudeBackend struct {
	apiKey    string
	model     string
	maxTokens int
	userAgent string
	client    *http.Client
}

func newClaudeBackend(cfg types.ComposeConfig) *claudeBackend {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	client := &http.Client{}
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	return &claudeBackend{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: maxTokens,
		userAgent: cfg.UserAgent,
		client:    client,
	}
}

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

// claudeMessage is a single message in the Claude API conversation.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

// claudeContent is a content block in the Claude API response.
type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message sends prompt as one user message and returns the first text
// block of the reply. Failures surface as ServiceError; nothing is
// retried.
func (b *claudeBackend) Message(ctx context.Context, prompt string) (string, error) {
	reqBody := claudeRequest{
		Model:     b.model,
		MaxTokens: b.maxTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", b.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	if b.userAgent != "" {
		req.Header.Set("User-Agent", b.userAgent)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", &types.ServiceError{Service: "compose", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &types.ServiceError{Service: "compose", Status: resp.StatusCode, Err: errors.New(string(body))}
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", &types.ServiceError{Service: "compose", Err: fmt.Errorf("decoding response: %w", err)}
	}

	for _, block := range cResp.Content {
		if block.Type != "text" || block.Text == "" {
			continue
		}
		return block.Text, nil
	}

	return "", &types.ServiceError{Service: "compose"}
}
