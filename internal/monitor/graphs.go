package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// findMinMax returns the minimum and maximum values in a slice.
// For percentage data (all values 0-100), returns fixed range 0-100.
func findMinMax(data []float64) (minVal, maxVal float64, isPercentage bool) {
	if len(data) == 0 {
		return 0, 100, true
	}

	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	// For percentage data (0-100), use fixed range for consistent scaling
	isPercentage = maxVal <= 100 && minVal >= 0
	if isPercentage {
		minVal = 0
		maxVal = 100
	}

	return minVal, maxVal, isPercentage
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// RenderSparkline renders data as one row of block characters, width cells
// wide. Longer data is compressed keeping peaks; shorter data is
// right-aligned so the newest sample is always in the last cell.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	minVal, maxVal, _ := findMinMax(data)
	points := resampleData(data, width)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width-len(points)))
	for _, val := range points {
		normalized := normalizeValue(val, minVal, maxVal)
		idx := clampInt(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1)
		b.WriteRune(sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// RenderGradientBar renders a horizontal bar with gradient fill.
// Colors transition from healthy to warning to critical based on position.
func RenderGradientBar(width int, percent float64, theme Theme) string {
	if width < 1 {
		width = 1
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	var result strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			posPercent := float64(i+1) / float64(width) * 100
			style := lipgloss.NewStyle().Foreground(theme.MetricColor(posPercent))
			result.WriteString(style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(theme.Muted)
			result.WriteString(style.Render("░"))
		}
	}

	return result.String()
}

// resampleData compresses data to at most targetSize points, keeping the
// maximum of each bucket so spikes stay visible. Shorter data is returned
// unchanged.
func resampleData(data []float64, targetSize int) []float64 {
	if targetSize <= 0 {
		return nil
	}
	if len(data) <= targetSize {
		return data
	}

	result := make([]float64, targetSize)
	bucketSize := float64(len(data)) / float64(targetSize)
	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}

		maxVal := data[start]
		for j := start + 1; j < end; j++ {
			if data[j] > maxVal {
				maxVal = data[j]
			}
		}
		result[i] = maxVal
	}
	return result
}
