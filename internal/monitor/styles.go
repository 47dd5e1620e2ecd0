package monitor

import (
	"github.com/charmbracelet/lipgloss"
)

// Thresholds for metric severity levels
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Theme is one dashboard palette. Colors are ANSI indexes so the themes work
// on the 16-color consoles a headless board usually has.
type Theme struct {
	Name    string
	Fg      lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Healthy lipgloss.Color
	Warn    lipgloss.Color
	Danger  lipgloss.Color
}

// Themes in the order 't' cycles through them.
var Themes = []Theme{
	{
		Name:    "dark",
		Fg:      lipgloss.Color("15"),
		Muted:   lipgloss.Color("8"),
		Accent:  lipgloss.Color("6"),
		Healthy: lipgloss.Color("2"),
		Warn:    lipgloss.Color("3"),
		Danger:  lipgloss.Color("1"),
	},
	{
		Name:    "light",
		Fg:      lipgloss.Color("0"),
		Muted:   lipgloss.Color("7"),
		Accent:  lipgloss.Color("4"),
		Healthy: lipgloss.Color("2"),
		Warn:    lipgloss.Color("5"),
		Danger:  lipgloss.Color("1"),
	},
	{
		Name:    "solar",
		Fg:      lipgloss.Color("3"),
		Muted:   lipgloss.Color("8"),
		Accent:  lipgloss.Color("2"),
		Healthy: lipgloss.Color("2"),
		Warn:    lipgloss.Color("5"),
		Danger:  lipgloss.Color("1"),
	},
}

// ThemeIndex returns the position of the named theme, or 0 for an unknown name.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// MetricColor returns the color for a percentage-based metric:
// healthy < 70%, warning 70-90%, danger >= 90%.
func (t Theme) MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return t.Danger
	case percent >= WarningThreshold:
		return t.Warn
	default:
		return t.Healthy
	}
}

// MetricStyle returns a style with the appropriate foreground color for the metric.
func (t Theme) MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MetricColor(percent))
}

// TitleStyle renders panel titles and the header.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

// LabelStyle renders field names.
func (t Theme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// ValueStyle renders field values.
func (t Theme) ValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Fg)
}

// PanelStyle frames one widget. The selected widget gets the accent border.
func (t Theme) PanelStyle(selected bool, width int) lipgloss.Style {
	border := t.Muted
	if selected {
		border = t.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}
