package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer turns markdown into terminal text.
type MarkdownRenderer func(markdown string) (string, error)

// NewMarkdownRenderer returns a glamour renderer. With color disabled it uses
// the plain "notty" style so no escape codes reach the output.
func NewMarkdownRenderer(color bool, width int) MarkdownRenderer {
	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return PlainMarkdown
	}

	return r.Render
}

// PlainMarkdown returns the markdown unchanged.
func PlainMarkdown(markdown string) (string, error) {
	return markdown, nil
}
