package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/logger"
	"github.com/rileyhilliard/raspimon/internal/query"
	"github.com/rileyhilliard/raspimon/internal/ui"
)

// ExitHint is printed under the menu.
const ExitHint = "To exit, type 'q'."

// exitWords and helpWords are matched after lowercasing the input.
var (
	exitWords = map[string]bool{"q": true, "quit": true, "exit": true}
	helpWords = map[string]bool{"h": true, "help": true}
)

// Option binds a menu key to the query it runs.
type Option struct {
	Key   string
	Label string
	Note  string
	Query query.Query
}

// Console is the menu dispatcher. It reads one selection per line and runs
// at most one query per selection.
type Console struct {
	reader   *bufio.Reader
	writer   io.Writer
	options  []Option
	header   *ui.HeaderInfo
	renderer ui.MarkdownRenderer
	help     string
	log      logger.Logger
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithHeader prints a header once when the console starts.
func WithHeader(info ui.HeaderInfo) ConsoleOption {
	return func(c *Console) {
		c.header = &info
	}
}

// WithRenderer sets how the help document is rendered.
func WithRenderer(r ui.MarkdownRenderer) ConsoleOption {
	return func(c *Console) {
		c.renderer = r
	}
}

// WithHelp replaces the built-in help document.
func WithHelp(markdown string) ConsoleOption {
	return func(c *Console) {
		c.help = markdown
	}
}

// WithLogger sets the logger for dispatch debug output.
func WithLogger(log logger.Logger) ConsoleOption {
	return func(c *Console) {
		c.log = log
	}
}

// New creates a console reading selections from r and writing to w.
// Selections are read through a buffer, so with piped input any lines after
// the current one are already consumed when a query hands r's underlying
// stream to an interactive tool. Those lines are still read as selections.
func New(r io.Reader, w io.Writer, options []Option, opts ...ConsoleOption) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}

	c := &Console{
		reader:   bufio.NewReader(r),
		writer:   w,
		options:  options,
		renderer: ui.PlainMarkdown,
		help:     HelpMarkdown,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run loops until the user exits or input ends. Both return nil. Only a read
// error other than EOF, or a cancelled context, ends the loop with an error.
func (c *Console) Run(ctx context.Context) error {
	if c.header != nil {
		fmt.Fprint(c.writer, ui.RenderHeader(*c.header))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.writer, c.renderMenu())
		fmt.Fprint(c.writer, ui.RenderPrompt(""))

		line, err := c.readLine()
		if err == io.EOF {
			c.log.Debug("console: end of input")
			fmt.Fprintln(c.writer)
			return nil
		}
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Couldn't read the menu selection",
				"Run raspimon from an interactive terminal.")
		}

		selection := strings.ToLower(strings.TrimSpace(line))
		if exitWords[selection] {
			c.log.Debug("console: exit requested")
			return nil
		}

		c.dispatch(ctx, selection, line)
	}
}

// readLine returns one line without its terminator. A final line with no
// newline is still returned; EOF is reported on the next call.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	}
	return "", err
}

func (c *Console) dispatch(ctx context.Context, selection, raw string) {
	if helpWords[selection] {
		c.showHelp()
		return
	}

	opt, ok := c.lookup(selection)
	if !ok {
		c.log.Debug("console: unrecognized selection %q", raw)
		c.printError(errors.NewUnrecognizedSelection(strings.TrimSpace(raw), c.validKeys()))
		return
	}

	kind := opt.Query.Kind()
	c.log.Debug("console: %s) dispatching %s", opt.Key, kind)

	n, err := c.runQuery(ctx, opt.Query)
	if err != nil {
		c.log.Debug("console: %s failed: %v", kind, err)
		c.printError(err)
		return
	}

	c.log.Debug("console: %s done (%d bytes)", kind, n)
}

// runQuery writes a query's report verbatim, ending it with a newline if the
// tool did not. Streaming queries write straight through as they go.
func (c *Console) runQuery(ctx context.Context, q query.Query) (int, error) {
	tw := &tailWriter{w: c.writer}

	var err error
	if sq, ok := q.(query.StreamingQuery); ok {
		err = sq.Stream(ctx, tw)
	} else {
		var out string
		out, err = q.Run(ctx)
		_, _ = io.WriteString(tw, out)
	}

	if tw.n > 0 && tw.last != '\n' {
		fmt.Fprintln(c.writer)
	}
	return tw.n, err
}

// tailWriter counts what passes through and remembers the last byte.
type tailWriter struct {
	w    io.Writer
	n    int
	last byte
}

func (t *tailWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.n += n
		t.last = p[n-1]
	}
	return n, err
}

func (c *Console) lookup(selection string) (Option, bool) {
	for _, opt := range c.options {
		if strings.ToLower(opt.Key) == selection {
			return opt, true
		}
	}
	return Option{}, false
}

func (c *Console) validKeys() []string {
	keys := make([]string, 0, len(c.options)+2)
	for _, opt := range c.options {
		keys = append(keys, opt.Key)
	}
	return append(keys, "h", "q")
}

func (c *Console) renderMenu() string {
	items := make([]ui.MenuItem, 0, len(c.options)+1)
	for _, opt := range c.options {
		items = append(items, ui.MenuItem{Key: opt.Key, Label: opt.Label, Note: opt.Note})
	}
	items = append(items, ui.MenuItem{Key: "h", Label: "Help"})
	return ui.RenderMenu(items, ExitHint)
}

func (c *Console) showHelp() {
	out, err := c.renderer(c.help)
	if err != nil {
		c.log.Debug("console: help render failed: %v", err)
		out = c.help
	}
	fmt.Fprint(c.writer, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(c.writer)
	}
}

func (c *Console) printError(err error) {
	text := err.Error()
	first, rest, _ := strings.Cut(text, "\n")
	fmt.Fprintln(c.writer, ui.ErrorStyle().Render(first))
	if rest != "" {
		fmt.Fprint(c.writer, rest)
	}
}
