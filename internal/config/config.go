// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads credentials and settings for the post-engine
// pipeline. Credentials come from the process environment (optionally
// seeded from a .env file in the working directory); tunable settings
// come from viper with built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/post-engine/pkg/types"
)

// Environment variables holding the service credentials.
const (
	EnvPerplexityKey = "PERPLEXITY_API_KEY"
	EnvAnthropicKey  = "ANTHROPIC_API_KEY"
)

// envFile is the dotenv file consulted before the environment proper.
// Package-level var so tests can point it at a temp directory.
var envFile = ".env"

// Defaults applied when the settings file omits a value.
const (
	defaultResearchModel = "sonar-pro"
	defaultResearchURL   = "https://api.perplexity.ai"
	defaultComposeModel  = "claude-3-5-sonnet-20241022"
	defaultMaxTokens     = 1000
	defaultTimeout       = 90 * time.Second
	defaultUserAgent     = "post-engine/0.1"
)

// SetDefaults registers the built-in settings on v. Call before Load so
// that a missing settings file still yields a usable configuration.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("research.model", defaultResearchModel)
	v.SetDefault("research.base_url", defaultResearchURL)
	v.SetDefault("research.timeout", defaultTimeout)
	v.SetDefault("research.user_agent", defaultUserAgent)
	v.SetDefault("compose.model", defaultComposeModel)
	v.SetDefault("compose.max_tokens", defaultMaxTokens)
	v.SetDefault("compose.timeout", defaultTimeout)
	v.SetDefault("compose.user_agent", defaultUserAgent)
	v.SetDefault("compose.presets_path", "")
}

// Load builds the pipeline configuration from v and the environment.
// A .env file in the working directory is read first without overriding
// variables already set in the environment. Both API keys are required;
// a missing key is a fatal ConfigError raised before any network call.
func Load(v *viper.Viper) (types.Config, error) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return types.Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	perplexityKey := os.Getenv(EnvPerplexityKey)
	if perplexityKey == "" {
		return types.Config{}, &types.ConfigError{Key: EnvPerplexityKey, Reason: "not found in environment"}
	}

	anthropicKey := os.Getenv(EnvAnthropicKey)
	if anthropicKey == "" {
		return types.Config{}, &types.ConfigError{Key: EnvAnthropicKey, Reason: "not found in environment"}
	}

	cfg := types.Config{
		Research: types.ResearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("research.timeout"),
				UserAgent: v.GetString("research.user_agent"),
			},
			Model:   v.GetString("research.model"),
			BaseURL: v.GetString("research.base_url"),
			APIKey:  perplexityKey,
		},
		Compose: types.ComposeConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("compose.timeout"),
				UserAgent: v.GetString("compose.user_agent"),
			},
			Model:       v.GetString("compose.model"),
			MaxTokens:   v.GetInt("compose.max_tokens"),
			PresetsPath: v.GetString("compose.presets_path"),
			APIKey:      anthropicKey,
		},
	}

	return cfg, nil
}
