// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose turns research text plus the user's style choices into
// a finished LinkedIn post via the Anthropic Messages API.
package compose

import (
	"context"
	"strings"

	"github.com/pdiddy/post-engine/pkg/types"
)

// Composer produces and revises posts. The pipeline depends on this
// interface so tests can supply a mock.
type Composer interface {
	Compose(ctx context.Context, research string, req types.PostRequest) (string, error)
	Revise(ctx context.Context, post, feedback string) (string, error)
}

// Backend abstracts the generation service so tests can supply a mock.
// Each call sends a single user message and returns the raw text reply.
type Backend interface {
	Message(ctx context.Context, prompt string) (string, error)
}

// ClaudeComposer formats posts by sending prompt templates to a Claude
// backend. The returned text is trusted as-is; word counts are not
// validated locally.
type ClaudeComposer struct {
	backend Backend
	presets *Presets
}

// New builds a composer from cfg. When cfg.PresetsPath is set, template
// overrides are loaded from that file; otherwise the built-in templates
// are used.
func New(cfg types.ComposeConfig) (*ClaudeComposer, error) {
	presets, err := LoadPresets(cfg.PresetsPath)
	if err != nil {
		return nil, err
	}
	return &ClaudeComposer{
		backend: newClaudeBackend(cfg),
		presets: presets,
	}, nil
}

// NewWithBackend builds a composer around an explicit backend. Used by
// tests and by callers that manage the HTTP client themselves.
func NewWithBackend(backend Backend, presets *Presets) *ClaudeComposer {
	if presets == nil {
		presets = builtinPresets()
	}
	return &ClaudeComposer{backend: backend, presets: presets}
}

// Compose selects the prompt template for req.Format, embeds the word
// range for req.Length and the research text, and returns the
// generation service's reply.
func (c *ClaudeComposer) Compose(ctx context.Context, research string, req types.PostRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt, err := buildFormatPrompt(research, req, c.presets)
	if err != nil {
		return "", err
	}

	post, err := c.backend.Message(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(post), nil
}

// Revise sends the original post and the user's feedback back to the
// generation service and returns the revised post.
func (c *ClaudeComposer) Revise(ctx context.Context, post, feedback string) (string, error) {
	if strings.TrimSpace(feedback) == "" {
		return "", &types.InputError{Field: "feedback", Reason: "must not be empty"}
	}

	prompt, err := buildRevisionPrompt(post, feedback)
	if err != nil {
		return "", err
	}

	revised, err := c.backend.Message(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(revised), nil
}
