// Package styles holds the lipgloss styles for terminal output. Styles are
// defined by semantic name in an embedded YAML sheet and use adaptive colors
// so they read on light and dark terminals.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names used by the renderers
const (
	Changed = "Changed"
	Ok      = "Ok"
	DryRun  = "DryRun"
	Error   = "Error"
	Code    = "Code"
	Path    = "Path"
	Muted   = "Muted"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Sheet is the parsed style sheet
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var registry map[string]lipgloss.Style

func init() {
	reg, err := Parse(embeddedStyles)
	if err != nil {
		reg = map[string]lipgloss.Style{}
	}
	registry = reg
}

// Parse builds a style registry from YAML sheet data. A style naming an
// undefined color is an error.
func Parse(data []byte) (map[string]lipgloss.Style, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(sheet.Colors))
	for name, def := range sheet.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(map[string]lipgloss.Style, len(sheet.Styles))
	for name, def := range sheet.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			c, ok := colors[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			style = style.Foreground(c)
		}
		if def.Background != "" {
			c, ok := colors[def.Background]
			if !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Background)
			}
			style = style.Background(c)
		}
		reg[name] = style
	}
	return reg, nil
}

// Get returns the named style, or a plain style when it is not defined.
func Get(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether the embedded sheet defines name.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}
