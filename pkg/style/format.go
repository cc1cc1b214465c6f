package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether printed models carry ANSI styling.
type ColorMode int

const (
	// ColorAuto enables color only when the destination is a capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways enables color unconditionally
	ColorAlways
	// ColorNever disables color
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Enabled resolves the mode against the environment and the output file
func (m ColorMode) Enabled(output *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return detectColor(output)
}

// detectColor determines whether the output supports color based on
// environment and terminal capabilities
func detectColor(output *os.File) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	// Check terminal color support
	colorProfile := termenv.ColorProfile()
	return colorProfile != termenv.Ascii
}
