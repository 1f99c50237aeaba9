package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render(m.spinner.View() + " " + m.loadingMessage))
	}
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s", m.err.Error())) +
			"\n\n" + SubtitleStyle.Render("Press any key to continue..."))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneSchedule:
		content = m.scheduleModel.View()
	case SceneCashFlow:
		content = m.cashFlowModel.View()
	case SceneHealth:
		content = m.healthModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneGoal:
		content = m.goalModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with the title bar and the key help line.
func (m Model) renderApp(content string) string {
	body := lipgloss.NewStyle().Height(max(m.height-4, 1)).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		body,
		StatusBarStyle.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	)
}

func (m Model) renderTitleBar() string {
	crumb := m.currentScene.String()
	if m.selectedScenario != "" {
		crumb += " / " + m.selectedScenario
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("finproj - Financial Projections"),
		SubtitleStyle.Render(crumb),
	)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(SubtitleStyle.Render("Scenes have their own keys, listed at the bottom of each screen."))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Press r to reload the configuration after editing it."))
	return BorderStyle.Render(b.String())
}
