package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/styles"
)

// MetricCard renders a single metric as a small bordered card:
// a title, a large value, and an optional caption underneath.
func MetricCard(title, value, caption string, width int) string {
	if width < 14 {
		width = 14
	}

	rows := []string{
		styles.MetricLabelStyle.Render(title),
		styles.MetricValueStyle.Render(value),
	}
	if caption != "" {
		rows = append(rows, styles.HelpStyle.Render(caption))
	}

	return styles.CardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// MetricRow joins metric cards horizontally, top-aligned.
func MetricRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
