package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values left to right scaled between their min and max.
// Non-finite values render as a gap. Longer series keep the last width points.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	var sb strings.Builder
	for _, v := range values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			sb.WriteRune(' ')
		case hi == lo:
			sb.WriteRune(sparkRunes[len(sparkRunes)/2])
		default:
			idx := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkRunes)-1)))
			sb.WriteRune(sparkRunes[idx])
		}
	}
	return sb.String()
}

// Bar is one labelled row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Note  string
	Color lipgloss.Color
}

// Bars renders one line per bar, scaled to the largest value. width is the
// room left for the bar itself after the label column.
func Bars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}
	labelW, maxV := 0, 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		if !math.IsNaN(b.Value) && !math.IsInf(b.Value, 0) {
			maxV = math.Max(maxV, b.Value)
		}
	}
	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		n := 0
		if maxV > 0 && b.Value > 0 && !math.IsInf(b.Value, 0) {
			n = int(math.Round(b.Value / maxV * float64(width)))
		}
		bar := strings.Repeat("█", n)
		if b.Color != "" {
			bar = lipgloss.NewStyle().Foreground(b.Color).Render(bar)
		}
		line := b.Label + strings.Repeat(" ", labelW-lipgloss.Width(b.Label)) + " " + bar
		if b.Note != "" {
			line += " " + b.Note
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
