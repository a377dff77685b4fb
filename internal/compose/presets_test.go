// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/post-engine/pkg/types"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPresets(t *testing.T) {
	t.Run("empty path returns built-ins for every format", func(t *testing.T) {
		presets, err := LoadPresets("")
		require.NoError(t, err)

		for _, format := range []types.PostFormat{
			types.FormatFacts, types.FormatStory, types.FormatGuide, types.FormatInsight,
		} {
			tmpl, err := presets.Template(format)
			require.NoError(t, err)
			assert.NotNil(t, tmpl)
		}
	})

	t.Run("override replaces one template and keeps the rest", func(t *testing.T) {
		path := writePresets(t, `templates:
  guide_based: |
    A custom guide layout for {{.Topic}}.
    {{.LengthGuide}}
`)
		presets, err := LoadPresets(path)
		require.NoError(t, err)

		tmpl, err := presets.Template(types.FormatGuide)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.Execute(&buf, promptData{Topic: "sourdough", LengthGuide: "short"}))
		assert.Contains(t, buf.String(), "A custom guide layout for sourdough.")

		// Facts stays on the built-in template.
		req := types.PostRequest{Topic: "t", Format: types.FormatFacts, Length: types.LengthShort}
		prompt, err := buildFormatPrompt("r", req, presets)
		require.NoError(t, err)
		assert.Contains(t, prompt, "attention-grabbing headline")
	})

	t.Run("unknown format key is rejected", func(t *testing.T) {
		path := writePresets(t, "templates:\n  sonnet_based: whatever\n")
		_, err := LoadPresets(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadPresets(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed template is rejected", func(t *testing.T) {
		path := writePresets(t, "templates:\n  facts_with_emoji: '{{.Broken'\n")
		_, err := LoadPresets(path)
		require.Error(t, err)
	})
}
