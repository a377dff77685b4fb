// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/post-engine/pkg/types"
)

// Presets holds the parsed prompt template for each post format.
type Presets struct {
	templates map[types.PostFormat]*template.Template
}

// presetsFile is the YAML shape of a template override file. Keys are
// format names (facts_with_emoji, story_based, guide_based,
// industry_insight); values replace the built-in template source.
type presetsFile struct {
	Templates map[string]string `yaml:"templates"`
}

// builtinPresets parses the built-in template sources.
func builtinPresets() *Presets {
	p := &Presets{templates: make(map[types.PostFormat]*template.Template, len(builtinTemplateText))}
	for format, text := range builtinTemplateText {
		p.templates[format] = template.Must(template.New(string(format)).Parse(text))
	}
	return p
}

// LoadPresets returns the built-in presets, with any overrides from the
// YAML file at path applied on top. An empty path means no overrides.
func LoadPresets(path string) (*Presets, error) {
	p := builtinPresets()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	var pf presetsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing presets file %s: %w", path, err)
	}

	for name, text := range pf.Templates {
		format := types.PostFormat(name)
		if !format.Valid() {
			return nil, fmt.Errorf("presets file %s: unknown format %q", path, name)
		}
		tmpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("presets file %s: parsing %s template: %w", path, name, err)
		}
		p.templates[format] = tmpl
	}

	return p, nil
}

// Template returns the parsed template for a format.
func (p *Presets) Template(format types.PostFormat) (*template.Template, error) {
	tmpl, ok := p.templates[format]
	if !ok {
		return nil, fmt.Errorf("no template for format %q", format)
	}
	return tmpl, nil
}
