// Package ui provides terminal styling for raspimon's console and commands.
//
// Everything here renders strings; nothing writes to the terminal directly,
// so the console can print to any io.Writer and tests can inspect output.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)   - Passing doctor checks
//	ColorError     (red)     - Tool failures and the exit hint
//	ColorWarning   (yellow)  - Notes such as "needs sudo"
//	ColorInfo      (cyan)    - Option keys and the prompt
//	ColorAccent    (magenta) - Program title
//	ColorMuted     (gray)    - Dividers and secondary text
//
// SetColorMode picks the lipgloss profile from the output.color setting;
// DisableColors forces monochrome (for --no-color).
//
// # Menu
//
//	fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{Version: "v1.0.0"}))
//	fmt.Fprint(w, ui.RenderMenu(items, "To exit, type 'q'."))
//
// # Markdown
//
// NewMarkdownRenderer wraps glamour for the help page. PlainMarkdown is the
// fallback when a renderer can't be built.
package ui
