// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research gathers factual source material for a topic from a
// retrieval-augmented research service. The service speaks the
// OpenAI-compatible chat completions protocol, so the client is built
// on the openai-go SDK pointed at the service's base URL.
package research

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/post-engine/pkg/types"
)

// Researcher produces a block of research text for a topic. The
// pipeline depends on this interface so tests can supply a mock.
type Researcher interface {
	Research(ctx context.Context, topic string) (string, error)
}

// Client queries the research service. One request per call; results
// are never cached, so two calls with the same topic issue two
// independent network requests.
type Client struct {
	cfg types.ResearchConfig
	api openai.Client
}

// NewClient builds a research client from cfg.
func NewClient(cfg types.ResearchConfig) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// The SDK retries failed requests by default; this pipeline
		// surfaces failures to the user instead.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, option.WithHeader("User-Agent", cfg.UserAgent))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	return &Client{
		cfg: cfg,
		api: openai.NewClient(opts...),
	}
}

// Research requests key facts, statistics, and recent developments
// about topic and returns the service's raw text response unmodified.
// An empty topic fails with InputError before any network I/O.
func (c *Client) Research(ctx context.Context, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", &types.InputError{Field: "topic", Reason: "must not be empty"}
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(userPrompt(topic)),
		},
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &types.ServiceError{Service: "research", Status: apierr.StatusCode, Err: err}
		}
		return "", &types.ServiceError{Service: "research", Err: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &types.ServiceError{Service: "research"}
	}

	return resp.Choices[0].Message.Content, nil
}
