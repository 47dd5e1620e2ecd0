package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultCollectTimeout bounds one sample when Options.Timeout is zero.
const defaultCollectTimeout = 5 * time.Second

// Sampler takes one sample of the board. *Collector implements it.
type Sampler interface {
	Collect(ctx context.Context) *Metrics
}

// Options configures a dashboard Model.
type Options struct {
	Interval    time.Duration // time between samples
	HistorySize int           // samples kept per graph
	Theme       string        // initial theme name
	Timeout     time.Duration // per-sample timeout (0 uses 5s)
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	sampler  Sampler
	history  *History
	metrics  *Metrics
	interval time.Duration
	timeout  time.Duration

	theme    int
	selected Widget
	keys     KeyMap
	help     help.Model

	width  int
	height int

	collecting bool
	lastUpdate time.Time
	quitting   bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// metricsMsg carries a finished sample.
type metricsMsg struct {
	metrics *Metrics
}

// NewModel creates a dashboard sampling through sampler.
func NewModel(sampler Sampler, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultCollectTimeout
	}

	m := Model{
		sampler:  sampler,
		history:  NewHistory(opts.HistorySize),
		interval: opts.Interval,
		timeout:  opts.Timeout,
		theme:    ThemeIndex(opts.Theme),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		// Init starts the first sample.
		collecting: true,
	}
	m.help.Styles = helpStyles(m.Theme())
	return m
}

// Init starts the tick timer and takes the first sample.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.sampleCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.collectCmd())

	case metricsMsg:
		m.collecting = false
		if msg.metrics != nil {
			m.metrics = msg.metrics
			m.lastUpdate = msg.metrics.Time
			m.history.Push(msg.metrics)
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Theme returns the active theme.
func (m Model) Theme() Theme {
	return Themes[m.theme]
}

// Selected returns the highlighted widget.
func (m Model) Selected() Widget {
	return m.selected
}

// Metrics returns the latest sample, or nil before the first one arrives.
func (m Model) Metrics() *Metrics {
	return m.metrics
}

// History returns the recorded samples.
func (m Model) History() *History {
	return m.history
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd starts a sample unless one is still running, so a slow board
// never has samples piling up.
func (m *Model) collectCmd() tea.Cmd {
	if m.collecting {
		return nil
	}
	m.collecting = true
	return m.sampleCmd()
}

func (m Model) sampleCmd() tea.Cmd {
	sampler, timeout := m.sampler, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return metricsMsg{metrics: sampler.Collect(ctx)}
	}
}

// helpStyles colors the key help footer for a theme.
func helpStyles(t Theme) help.Styles {
	s := help.New().Styles
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	descStyle := lipgloss.NewStyle().Foreground(t.Muted)
	s.ShortKey, s.FullKey = keyStyle, keyStyle
	s.ShortDesc, s.FullDesc = descStyle, descStyle
	s.ShortSeparator, s.FullSeparator = descStyle, descStyle
	s.Ellipsis = descStyle
	return s
}
