// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/post-engine/pkg/types"
)

// withEnvFile points the dotenv lookup at a file in a temp directory.
// An empty content means no file is written.
func withEnvFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	orig := envFile
	envFile = path
	t.Cleanup(func() { envFile = orig })
}

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadFromEnvironment(t *testing.T) {
	withEnvFile(t, "")
	t.Setenv(EnvPerplexityKey, "pplx-key")
	t.Setenv(EnvAnthropicKey, "ant-key")

	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "pplx-key", cfg.Research.APIKey)
	assert.Equal(t, "ant-key", cfg.Compose.APIKey)

	// Defaults apply when no settings file is present.
	assert.Equal(t, "sonar-pro", cfg.Research.Model)
	assert.Equal(t, "https://api.perplexity.ai", cfg.Research.BaseURL)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Compose.Model)
	assert.Equal(t, 1000, cfg.Compose.MaxTokens)
	assert.Positive(t, cfg.Research.Timeout)
	assert.Positive(t, cfg.Compose.Timeout)
}

func TestLoadFromDotenvFile(t *testing.T) {
	withEnvFile(t, "PERPLEXITY_API_KEY=file-pplx\nANTHROPIC_API_KEY=file-ant\n")
	t.Setenv(EnvPerplexityKey, "")
	t.Setenv(EnvAnthropicKey, "")
	os.Unsetenv(EnvPerplexityKey)
	os.Unsetenv(EnvAnthropicKey)

	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "file-pplx", cfg.Research.APIKey)
	assert.Equal(t, "file-ant", cfg.Compose.APIKey)
}

func TestLoadMissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantKey string
	}{
		{
			name: "missing research key",
			setup: func(t *testing.T) {
				t.Setenv(EnvAnthropicKey, "ant-key")
				t.Setenv(EnvPerplexityKey, "")
				os.Unsetenv(EnvPerplexityKey)
			},
			wantKey: EnvPerplexityKey,
		},
		{
			name: "missing generation key",
			setup: func(t *testing.T) {
				t.Setenv(EnvPerplexityKey, "pplx-key")
				t.Setenv(EnvAnthropicKey, "")
				os.Unsetenv(EnvAnthropicKey)
			},
			wantKey: EnvAnthropicKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnvFile(t, "")
			tt.setup(t)

			_, err := Load(newViper())
			var cfgErr *types.ConfigError
			require.True(t, errors.As(err, &cfgErr), "error = %v, want ConfigError", err)
			assert.Equal(t, tt.wantKey, cfgErr.Key)
		})
	}
}

func TestLoadSettingsOverrideDefaults(t *testing.T) {
	withEnvFile(t, "")
	t.Setenv(EnvPerplexityKey, "pplx-key")
	t.Setenv(EnvAnthropicKey, "ant-key")

	v := newViper()
	v.Set("research.model", "sonar-reasoning")
	v.Set("compose.max_tokens", 2048)
	v.Set("compose.presets_path", "styles.yaml")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "sonar-reasoning", cfg.Research.Model)
	assert.Equal(t, 2048, cfg.Compose.MaxTokens)
	assert.Equal(t, "styles.yaml", cfg.Compose.PresetsPath)
}
