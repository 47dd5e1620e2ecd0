package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Tagline string // Optional tagline
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// MenuItem is one selectable line of the console menu.
type MenuItem struct {
	Key   string
	Label string
	// Note is shown after the label in the warning color (e.g. "needs sudo").
	Note string
}

// RenderHeader renders the program title, version, and tagline above a divider.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorInfo)

	taglineStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	var output strings.Builder

	output.WriteString(titleStyle.Render("raspimon"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	output.WriteString(Divider())
	output.WriteString("\n")

	return output.String()
}

// Divider renders a muted horizontal rule.
func Divider() string {
	return MutedStyle().Render(strings.Repeat("━", HeaderWidth))
}

// RenderMenu renders the option list followed by the exit hint.
func RenderMenu(items []MenuItem, exitHint string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	noteStyle := WarningStyle()

	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s) %s", keyStyle.Render(item.Key), item.Label))
		if item.Note != "" {
			b.WriteString(" ")
			b.WriteString(noteStyle.Render(item.Note))
		}
		b.WriteString("\n")
	}

	b.WriteString(Divider())
	b.WriteString("\n")
	if exitHint != "" {
		b.WriteString(ErrorStyle().Render(exitHint))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderPrompt renders the input prompt marker.
func RenderPrompt(label string) string {
	return lipgloss.NewStyle().Foreground(ColorInfo).Render(SymbolPrompt) + " " + label
}
