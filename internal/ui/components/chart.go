// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/styles"
)

// ChartColors defines colors for chart legend elements.
var (
	ChartCompletedColor = lipgloss.Color("#04B575")
	ChartMissedColor    = lipgloss.Color("#FF5F87")
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderDualLineChart creates the two-series chart for completed vs missed.
func RenderDualLineChart(completed, missed []float64, width, height int, caption string) string {
	if len(completed) == 0 && len(missed) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	// Normalize lengths - pad shorter series with zeros
	maxLen := max(len(completed), len(missed))

	completedData := make([]float64, maxLen)
	missedData := make([]float64, maxLen)
	copy(completedData, completed)
	copy(missedData, missed)

	return asciigraph.PlotMany([][]float64{completedData, missedData},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(
			asciigraph.Green,
			asciigraph.Red,
		),
	)
}

// RenderBarChart creates a simple horizontal bar chart.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 10 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		paddedLabel := fmt.Sprintf("%*s", maxLabelLen, label)

		barLen := int((v / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}

		bar := strings.Repeat("█", barLen)
		valueStr := fmt.Sprintf(" %.0f", v)

		lines = append(lines, paddedLabel+" │"+bar+valueStr)
	}

	return strings.Join(lines, "\n")
}

// RenderSentimentBar renders the sentiment distribution as one proportional
// segmented bar with per-slice counts. Zero-count buckets never reach here.
func RenderSentimentBar(slices []models.SentimentSlice, width int) string {
	if len(slices) == 0 {
		return styles.HelpStyle.Render("No sentiment data")
	}

	total := 0
	for _, s := range slices {
		total += s.Count
	}
	if total == 0 {
		return styles.HelpStyle.Render("No sentiment data")
	}

	barWidth := width - 4
	if barWidth < 12 {
		barWidth = 12
	}

	var bar strings.Builder
	used := 0
	for i, s := range slices {
		segment := int(float64(s.Count) / float64(total) * float64(barWidth))
		if segment < 1 {
			segment = 1
		}
		// Last slice absorbs rounding drift.
		if i == len(slices)-1 {
			segment = max(barWidth-used, 1)
		}
		used += segment

		style := styles.GetSentimentStyle(string(s.Sentiment))
		bar.WriteString(style.Render(strings.Repeat("█", segment)))
	}

	var legend []string
	for _, s := range slices {
		style := styles.GetSentimentStyle(string(s.Sentiment))
		percent := float64(s.Count) / float64(total) * 100
		legend = append(legend, style.Render(fmt.Sprintf("■ %s %d (%.0f%%)", s.Sentiment, s.Count, percent)))
	}

	return bar.String() + "\n" + strings.Join(legend, "  ")
}

// RenderSparkline creates a compact inline sparkline chart.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var result strings.Builder
	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		idx := int(float64(i) * step)
		normalized := int((values[idx] / maxVal) * float64(len(sparkChars)-1))
		if normalized >= len(sparkChars) {
			normalized = len(sparkChars) - 1
		}
		if normalized < 0 {
			normalized = 0
		}
		result.WriteRune(sparkChars[normalized])
	}

	return result.String()
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
