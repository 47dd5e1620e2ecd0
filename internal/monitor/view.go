package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Layout breakpoints and defaults.
const (
	defaultWidth    = 100
	stackedMaxWidth = 80 // below this the sidebar moves under the panels
	minSidebarWidth = 28
	minGraphWidth   = 10
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	if m.metrics == nil {
		b.WriteString(m.Theme().LabelStyle().Render("Sampling..."))
		b.WriteString("\n")
	} else if width < stackedMaxWidth {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
			m.renderPanels(width),
			m.renderSidebar(width),
		))
		b.WriteString("\n")
	} else {
		sidebarWidth := width * 22 / 100
		if sidebarWidth < minSidebarWidth {
			sidebarWidth = minSidebarWidth
		}
		mainWidth := width - sidebarWidth - 1
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPanels(mainWidth),
			" ",
			m.renderSidebar(sidebarWidth),
		))
		b.WriteString("\n")
	}

	if m.metrics != nil && len(m.metrics.Errors) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.Theme().Warn).Render(m.metrics.Errors[0]))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader renders the title line with host, uptime and theme.
func (m Model) renderHeader() string {
	t := m.Theme()
	name := t.TitleStyle().Render("raspimon monitor")

	parts := []string{}
	if m.metrics != nil {
		if m.metrics.Hostname != "" {
			parts = append(parts, m.metrics.Hostname)
		}
		if m.metrics.Uptime > 0 {
			parts = append(parts, "up "+formatUptime(m.metrics.Uptime))
		}
	}
	parts = append(parts, "theme: "+t.Name)
	if !m.lastUpdate.IsZero() {
		parts = append(parts, "updated "+formatAge(time.Since(m.lastUpdate)))
	}

	return name + t.LabelStyle().Render(" | "+strings.Join(parts, " | "))
}

// renderPanels stacks the six widgets, highlighting the selected one.
func (m Model) renderPanels(width int) string {
	panels := make([]string, 0, widgetCount)
	for w := Widget(0); w < widgetCount; w++ {
		panels = append(panels, m.renderPanel(w, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m Model) renderPanel(w Widget, width int) string {
	t := m.Theme()
	// Border takes two cells, padding another two
	inner := width - 4
	graph := inner - 3
	if graph < minGraphWidth {
		graph = minGraphWidth
	}

	var lines []string
	switch w {
	case WidgetCPU:
		cpu := m.metrics.CPU
		lines = append(lines,
			title(t, "CPU", t.MetricStyle(cpu.Percent).Render(fmt.Sprintf("%5.1f%%", cpu.Percent)),
				fmt.Sprintf("%d cores  load %.2f %.2f %.2f", cpu.Cores, cpu.LoadAvg[0], cpu.LoadAvg[1], cpu.LoadAvg[2])),
			"   "+RenderSparkline(m.history.All(SeriesCPU), graph, t.Accent),
			"   "+RenderGradientBar(graph, cpu.Percent, t),
		)

	case WidgetTemp:
		temp := m.metrics.Temperature
		if temp == nil {
			lines = append(lines, title(t, "Temperature", "-", "no sensor reading"))
			break
		}
		lines = append(lines,
			title(t, "Temperature", t.MetricStyle(temp.Celsius).Render(fmt.Sprintf("%5.1f°C", temp.Celsius)), temp.Source),
			"   "+RenderSparkline(m.history.All(SeriesTemp), graph, t.Accent),
			"   "+RenderGradientBar(graph, temp.Celsius, t),
		)

	case WidgetNet:
		in, _ := m.history.Latest(SeriesNetIn)
		out, _ := m.history.Latest(SeriesNetOut)
		lines = append(lines,
			title(t, "Network", "↓ "+FormatRate(in), "↑ "+FormatRate(out)),
			"↓: "+RenderSparkline(m.history.All(SeriesNetIn), graph, t.Accent),
			"↑: "+RenderSparkline(m.history.All(SeriesNetOut), graph, t.Accent),
		)

	case WidgetDisk:
		r, _ := m.history.Latest(SeriesDiskRead)
		wr, _ := m.history.Latest(SeriesDiskWrite)
		lines = append(lines,
			title(t, "SD Card R/W", "R "+FormatRate(r), "W "+FormatRate(wr)),
			"R: "+RenderSparkline(m.history.All(SeriesDiskRead), graph, t.Accent),
			"W: "+RenderSparkline(m.history.All(SeriesDiskWrite), graph, t.Accent),
		)

	case WidgetGPU:
		gpu := m.metrics.GPU
		if gpu == nil {
			lines = append(lines, title(t, "GPU", "-", "vcgencmd not available"))
			break
		}
		lines = append(lines,
			title(t, "GPU", t.MetricStyle(gpu.Percent).Render(fmt.Sprintf("%4.0f%%", gpu.Percent)),
				fmt.Sprintf("core %d MHz", gpu.CoreClockHz/1_000_000)),
			"   "+RenderGradientBar(graph, gpu.Percent, t),
		)

	case WidgetPower:
		lines = append(lines, m.renderPower()...)
	}

	return t.PanelStyle(w == m.selected, width-2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPower() []string {
	t := m.Theme()
	p := m.metrics.Power
	if p == nil {
		return []string{title(t, "Fan / Power", "-", "vcgencmd not available")}
	}

	state := t.ValueStyle().Render("ok")
	if p.Throttling() {
		state = lipgloss.NewStyle().Foreground(t.Danger).Render("throttling")
	} else if p.Throttled != 0 {
		state = lipgloss.NewStyle().Foreground(t.Warn).Render("throttled since boot")
	}

	volts := "-"
	if p.Volts > 0 {
		volts = fmt.Sprintf("%.4fV", p.Volts)
	}

	lines := []string{
		title(t, "Fan / Power", state, ""),
		fmt.Sprintf("   %s %s", t.LabelStyle().Render("Throttled:"), fmt.Sprintf("0x%x", p.Throttled)),
		fmt.Sprintf("   %s %s", t.LabelStyle().Render("Volts:"), volts),
	}
	if len(p.Flags) > 0 {
		lines = append(lines, "   "+t.LabelStyle().Render(strings.Join(p.Flags, ", ")))
	}
	return lines
}

// renderSidebar renders the system summary and the widget list.
func (m Model) renderSidebar(width int) string {
	t := m.Theme()
	mm := m.metrics

	temp := "-"
	if mm.Temperature != nil {
		temp = fmt.Sprintf("%.1f°C", mm.Temperature.Celsius)
	}
	ip := mm.IP
	if ip == "" {
		ip = "-"
	}

	stats := []struct{ label, value string }{
		{"CPU", fmt.Sprintf("%.1f%%", mm.CPU.Percent)},
		{"Temp", temp},
		{"Mem", fmt.Sprintf("%.1f%%", mm.Memory.Percent)},
		{"Disk", fmt.Sprintf("%.1f%%", mm.Disk.Percent)},
		{"IP", ip},
		{"Sent", formatBytes(mm.Network.BytesOut)},
		{"Recv", formatBytes(mm.Network.BytesIn)},
	}

	lines := []string{t.TitleStyle().Render("System")}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%s %s", t.LabelStyle().Render(fmt.Sprintf("%-6s", s.label)), t.ValueStyle().Render(s.value)))
	}

	lines = append(lines, "", t.TitleStyle().Render("Widgets"))
	for w := Widget(0); w < widgetCount; w++ {
		if w == m.selected {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.Accent).Render("▶ "+w.String()))
			continue
		}
		lines = append(lines, "  "+t.ValueStyle().Render(w.String()))
	}

	return t.PanelStyle(false, width-2).Render(strings.Join(lines, "\n"))
}

// title renders a panel's first line: name, main value, detail.
func title(t Theme, name, value, detail string) string {
	line := t.TitleStyle().Render(fmt.Sprintf("%-12s", name)) + " " + value
	if detail != "" {
		line += "  " + t.LabelStyle().Render(detail)
	}
	return line
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatRate formats a bytes-per-second rate as a human-readable string.
func FormatRate(bytesPerSecond float64) string {
	if bytesPerSecond < 1024 {
		return fmt.Sprintf("%.0f B/s", bytesPerSecond)
	} else if bytesPerSecond < 1024*1024 {
		return fmt.Sprintf("%.1f KB/s", bytesPerSecond/1024)
	} else if bytesPerSecond < 1024*1024*1024 {
		return fmt.Sprintf("%.1f MB/s", bytesPerSecond/(1024*1024))
	}
	return fmt.Sprintf("%.1f GB/s", bytesPerSecond/(1024*1024*1024))
}

// formatUptime renders an uptime as "3d 4h", "4h 12m" or "12m".
func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// formatAge renders how long ago the last sample was taken.
func formatAge(d time.Duration) string {
	secs := int(d.Seconds())
	switch {
	case secs <= 0:
		return "just now"
	case secs == 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", secs)
	}
}
