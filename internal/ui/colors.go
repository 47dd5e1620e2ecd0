package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
	ColorAccent    lipgloss.Color = "5" // Magenta, used for the title
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SetColorMode configures lipgloss for the given mode. "auto" detects the
// profile of out; anything that is not a terminal gets plain text.
func SetColorMode(mode string, out io.Writer) {
	switch mode {
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		if f, ok := out.(*os.File); ok {
			lipgloss.SetColorProfile(termenv.NewOutput(f).ColorProfile())
			return
		}
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// DisableColors switches to monochrome output (for --no-color).
func DisableColors() {
	SetColorMode(ColorNever, nil)
}

// ColorsEnabled reports whether lipgloss will emit color codes.
func ColorsEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
