package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/styles"
	"github.com/Kart8ik/Voice-AI-Platform/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

// renderConfigCard renders the effective configuration.
func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("API Base URL", m.config.APIBaseURL))
		rows = append(rows, m.renderConfigRow("Request Timeout", m.config.RequestTimeout.String()))
		rows = append(rows, m.renderConfigRow("Default Range", fmt.Sprintf("%d days", m.config.DefaultRangeDays)))
		envFile := m.config.EnvFile
		if envFile == "" {
			envFile = "(none)"
		}
		rows = append(rows, m.renderConfigRow("Env File", envFile))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("Settings reload automatically when the env file changes"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a configuration key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderAboutCard renders the about/version information card.
func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About Voice AI Platform Dashboard"))
	rows = append(rows, "")

	ver, commit, date := version.Current()
	rows = append(rows, m.renderConfigRow("Version", ver))
	rows = append(rows, m.renderConfigRow("Git Commit", commit))
	rows = append(rows, m.renderConfigRow("Build Date", date))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))
	rows = append(rows, "")

	if snapshot := m.state.GetSnapshot(); snapshot != nil {
		rows = append(rows, fmt.Sprintf("Assistants: %s", styles.InfoTextStyle.Render(fmt.Sprintf("%d", len(snapshot.Assistants)))))
		rows = append(rows, fmt.Sprintf("Last fetch: %s", styles.InfoTextStyle.Render(snapshot.FetchedAt.Format("2006-01-02 15:04:05"))))
	} else {
		rows = append(rows, styles.HelpStyle.Render("No data loaded yet"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
