package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style

	running lipgloss.Style
	rest    lipgloss.Style
	stopped lipgloss.Style

	sparkHigh lipgloss.Style
	sparkMid  lipgloss.Style
	sparkLow  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas:    lipgloss.NewStyle().Padding(1, 2).Foreground(t.Primary),
		stats:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(45),
		header:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		graph:     lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:      lipgloss.NewStyle().Foreground(t.Muted).MarginTop(2),
		running:   lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		rest:      lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		stopped:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		sparkHigh: lipgloss.NewStyle().Foreground(t.Success),
		sparkMid:  lipgloss.NewStyle().Foreground(t.Warning),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Error),
	}
}

// progressBar renders a bar filled to percent of width.
func (s styles) progressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent > 0.8 {
		return s.sparkHigh.Render(bar)
	} else if percent > 0.4 {
		return s.sparkMid.Render(bar)
	}
	return s.sparkLow.Render(bar)
}

// sparkline renders the last width values scaled between their min and max.
func (s styles) sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var result strings.Builder
	for _, v := range values {
		norm := (v - lo) / rng
		idx := max(0, min(len(chars)-1, int(norm*float64(len(chars)-1))))

		c := string(chars[idx])
		if norm > 0.7 {
			result.WriteString(s.sparkHigh.Render(c))
		} else if norm > 0.3 {
			result.WriteString(s.sparkMid.Render(c))
		} else {
			result.WriteString(s.sparkLow.Render(c))
		}
	}
	return result.String()
}
