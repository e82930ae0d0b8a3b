package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/components"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/styles"
)

// View renders the dashboard tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	// Loading, error, and loaded are mutually exclusive: a failed cycle
	// shows the error state even when an older snapshot is still retained.
	snapshot := m.state.GetSnapshot()
	if m.state.GetFetchError() != "" || snapshot == nil {
		return m.renderError()
	}

	var sections []string
	sections = append(sections, m.renderTitle(snapshot))
	sections = append(sections, m.renderMetricCards(snapshot))
	sections = append(sections, m.renderDailyChart(snapshot))
	sections = append(sections, m.renderStatusBreakdown(snapshot))
	sections = append(sections, m.renderSentiment(snapshot))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderError renders the failed state with the manual retry hint.
func (m *Model) renderError() string {
	message := m.state.GetFetchError()
	if message == "" {
		message = "No analytics data available"
	}

	lines := []string{
		styles.ErrorTextStyle.Render("✗ Could not load analytics"),
		"",
		styles.HelpStyle.Render(message),
		"",
		styles.InfoTextStyle.Render("Press r to retry"),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return styles.CenterBoth(content, m.width, m.height)
}

// renderTitle renders the dashboard title.
func (m *Model) renderTitle(snapshot *models.Snapshot) string {
	title := styles.TitleStyle.Render("Call Analytics")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf(
		"Showing the last %s · updated %s",
		snapshot.Range,
		snapshot.FetchedAt.Format("15:04:05"),
	))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderMetricCards(snapshot *models.Snapshot) string {
	vm := snapshot.ViewModel
	cardWidth := max((m.width-10)/5, 16)

	rateStr := styles.GetRateStyle(vm.AnswerRate).Render(fmt.Sprintf("%.1f%%", vm.AnswerRate))

	cards := []string{
		components.MetricCard("Total Calls", fmt.Sprintf("%d", vm.TotalCalls), fmt.Sprintf("%d today", vm.TodayCalls), cardWidth),
		components.MetricCard("Answered", fmt.Sprintf("%d", vm.CompletedCalls), fmt.Sprintf("%d failed", vm.FailedCalls), cardWidth),
		components.MetricCard("Answer Rate", rateStr, "", cardWidth),
		components.MetricCard("Avg Duration", formatSeconds(vm.AvgDuration), fmt.Sprintf("%s total", formatSeconds(float64(vm.TotalDuration))), cardWidth),
		components.MetricCard("Est. Cost/Call", fmt.Sprintf("$%.3f", vm.AvgCostPerCall), "", cardWidth),
	}

	return components.MetricRow(cards...)
}

func (m *Model) renderDailyChart(snapshot *models.Snapshot) string {
	cardWidth := max(m.width-6, 40)
	chartWidth := max(cardWidth-12, 20)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Calls per Day"))

	if len(snapshot.Daily) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No call activity in this window"))
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	completed := make([]float64, len(snapshot.Daily))
	missed := make([]float64, len(snapshot.Daily))
	for i, p := range snapshot.Daily {
		completed[i] = float64(p.Completed)
		missed[i] = float64(p.Missed)
	}

	caption := dailyCaption(snapshot.Daily)
	rows = append(rows, components.RenderDualLineChart(completed, missed, chartWidth, 8, caption))
	rows = append(rows, "")
	rows = append(rows, components.RenderLegend([]components.LegendItem{
		{Label: "completed", Color: components.ChartCompletedColor},
		{Label: "missed", Color: components.ChartMissedColor},
	}))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderStatusBreakdown(snapshot *models.Snapshot) string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Status Breakdown"))

	var values []float64
	var labels []string
	for _, status := range models.CallStatuses {
		count := snapshot.ViewModel.StatusBreakdown.Count(status)
		if count == 0 {
			continue
		}
		values = append(values, float64(count))
		labels = append(labels, string(status))
	}

	if len(values) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No calls recorded"))
	} else {
		rows = append(rows, components.RenderBarChart(values, labels, cardWidth-8))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSentiment(snapshot *models.Snapshot) string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Caller Sentiment"))
	rows = append(rows, components.RenderSentimentBar(snapshot.Sentiment, cardWidth-8))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// dailyCaption summarizes the plotted window, e.g. "Mar 1 to Mar 7".
func dailyCaption(points []models.DailyPoint) string {
	if len(points) == 0 {
		return ""
	}
	if len(points) == 1 {
		return points[0].Date
	}
	return points[0].Date + " to " + points[len(points)-1].Date
}

// formatSeconds renders a duration in seconds as "1m 24s" or "45s".
func formatSeconds(seconds float64) string {
	if seconds <= 0 {
		return "0s"
	}

	total := int(seconds)
	h := total / 3600
	mnt := (total % 3600) / 60
	sec := total % 60

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh ", h)
	}
	if mnt > 0 {
		fmt.Fprintf(&b, "%dm ", mnt)
	}
	fmt.Fprintf(&b, "%ds", sec)
	return b.String()
}
