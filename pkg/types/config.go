// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by clients that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "post-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResearchConfig holds settings for the research stage.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the research model identifier (default "sonar-pro").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the OpenAI-compatible endpoint of the research
	// service (default "https://api.perplexity.ai").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates against the research service. Loaded from
	// the environment, never from the settings file.
	APIKey string `json:"-" yaml:"-"`
}

// ComposeConfig holds settings for the formatting stage.
type ComposeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the generation model identifier
	// (default "claude-3-5-sonnet-20241022").
	Model string `json:"model" yaml:"model"`

	// MaxTokens caps the generated response length (default 1000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// PresetsPath optionally points at a YAML file overriding the
	// built-in prompt templates per format.
	PresetsPath string `json:"presets_path,omitempty" yaml:"presets_path,omitempty"`

	// APIKey authenticates against the generation service. Loaded
	// from the environment, never from the settings file.
	APIKey string `json:"-" yaml:"-"`
}

// Config groups all stage configurations for the pipeline.
type Config struct {
	Research ResearchConfig `json:"research" yaml:"research"`
	Compose  ComposeConfig  `json:"compose" yaml:"compose"`
}
