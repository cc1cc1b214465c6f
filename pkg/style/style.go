// Package style defines the visual styling for quill's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The theme is loaded from an
// embedded YAML file; Funcs bridges the named styles to the printer's
// StyleFunc slots.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/quill/pkg/printer"
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

// Config represents the complete theme configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

// Adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

//go:embed theme.yaml
var embeddedTheme []byte

func init() {
	if err := LoadThemeFromData(embeddedTheme); err != nil {
		// The embedded theme should always parse; fall back to bare
		// styles rather than crashing.
		initDefaultStyles()
	}
}

// initDefaultStyles initializes a minimal set of default styles
// This ensures the program can run even if the theme fails to parse
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	StyleRegistry = make(map[string]lipgloss.Style)

	defaultStyle := lipgloss.NewStyle()
	for _, name := range []string{
		"String", "Number", "Keyword", "Key", "Punct", "Label", "Circular",
	} {
		StyleRegistry[name] = defaultStyle
	}
}

// LoadThemeFromData loads theme configuration from byte data
func LoadThemeFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse theme data: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	StyleRegistry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}

	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Funcs returns the printer style bundle backed by the loaded theme.
func Funcs() printer.Styles {
	render := func(name string) printer.StyleFunc {
		st := GetStyle(name)
		return func(s string) string { return st.Render(s) }
	}
	return printer.Styles{
		String:   render("String"),
		Number:   render("Number"),
		Keyword:  render("Keyword"),
		Key:      render("Key"),
		Punct:    render("Punct"),
		Label:    render("Label"),
		Circular: render("Circular"),
	}
}
