package agents

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/components"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/styles"
)

// View renders the agents tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	var sections []string
	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderRoster())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Voice Assistants")
	subtitle := styles.HelpStyle.Render("Assistants configured on the platform")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderRoster() string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Roster"))

	snapshot := m.state.GetSnapshot()
	if snapshot == nil || len(snapshot.Assistants) == 0 {
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("  No assistants available"))
		rows = append(rows, styles.InfoTextStyle.Render("  The roster endpoint may be down; analytics still work without it."))
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	rows = append(rows, m.renderHeader())
	for i, a := range snapshot.Assistants {
		rows = append(rows, m.renderAssistantRow(a, i == m.selectedIndex))
	}

	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render(fmt.Sprintf("  %d assistant(s)", len(snapshot.Assistants))))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderHeader() string {
	return styles.TableHeaderStyle.Render(fmt.Sprintf("  %-28s %-24s %s", "NAME", "MODEL", "ID"))
}

func (m *Model) renderAssistantRow(a models.Assistant, selected bool) string {
	prefix := "  "
	rowStyle := styles.TableCellStyle
	if selected {
		prefix = styles.SelectedListItemStyle.String()
		rowStyle = rowStyle.Foreground(styles.Primary).Bold(true)
	}

	name := truncate(a.Name, 26)
	model := truncate(a.Model, 22)

	return prefix + rowStyle.Render(fmt.Sprintf("%-28s %-24s %s", name, model, a.ID))
}

// truncate cuts a string to the given display width, never mid-rune.
func truncate(s string, limit int) string {
	return ansi.Truncate(s, limit, "...")
}
