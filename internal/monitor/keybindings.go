package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is one dashboard panel.
type Widget int

const (
	WidgetCPU Widget = iota
	WidgetTemp
	WidgetNet
	WidgetDisk
	WidgetGPU
	WidgetPower
	widgetCount
)

// String returns the panel title shown in the widget list.
func (w Widget) String() string {
	switch w {
	case WidgetCPU:
		return "CPU"
	case WidgetTemp:
		return "Temp"
	case WidgetNet:
		return "Net"
	case WidgetDisk:
		return "SD IO"
	case WidgetGPU:
		return "GPU"
	case WidgetPower:
		return "Fan/Power"
	default:
		return "unknown"
	}
}

// Next returns the following widget, wrapping around.
func (w Widget) Next() Widget {
	return Widget((int(w) + 1) % int(widgetCount))
}

// Prev returns the preceding widget, wrapping around.
func (w Widget) Prev() Widget {
	return Widget((int(w) + int(widgetCount) - 1) % int(widgetCount))
}

// KeyMap holds the dashboard key bindings. It implements help.KeyMap.
type KeyMap struct {
	Quit    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Theme   key.Binding
	Refresh key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next widget"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev widget"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sample now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Theme, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Theme, k.Refresh},
		{k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input and returns the command to run.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.selected = m.selected.Next()
	case key.Matches(msg, m.keys.Prev):
		m.selected = m.selected.Prev()
	case key.Matches(msg, m.keys.Theme):
		m.theme = (m.theme + 1) % len(Themes)
		m.help.Styles = helpStyles(m.Theme())
	case key.Matches(msg, m.keys.Refresh):
		return true, m.collectCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return false, nil
	}
	return true, nil
}
