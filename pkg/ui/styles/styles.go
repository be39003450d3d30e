// Package styles defines the visual styling for docmd's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They only ever apply to CLI chrome (errors, the
// kinds listing); the converted Markdown itself is always plain text.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
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
	Foreground string `yaml:"foreground,omitempty"`
}

// Sheet represents the complete styles configuration
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var registry map[string]lipgloss.Style

func init() {
	reg, err := buildRegistry(embeddedStyles)
	if err != nil {
		// The sheet ships inside the binary; failing to parse it is a
		// programming error
		panic(fmt.Sprintf("styles: invalid embedded style sheet: %v", err))
	}
	registry = reg
}

func buildRegistry(raw []byte) (map[string]lipgloss.Style, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(raw, &sheet); err != nil {
		return nil, err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(sheet.Colors))
	for name, def := range sheet.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(map[string]lipgloss.Style, len(sheet.Styles))
	for name, def := range sheet.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		reg[name] = style
	}
	return reg, nil
}

// GetStyle returns the style registered under the given semantic name, or
// an unstyled default when the name is unknown.
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Names returns the semantic style names available.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
