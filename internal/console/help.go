package console

import _ "embed"

// HelpMarkdown is the help document shown for 'h'.
//
//go:embed help.md
var HelpMarkdown string
