package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/finproj/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case tuimsg.ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ResultsLoadedMsg:
		m.loading = false
		m.err = nil
		m.config = msg.Config
		m.results = msg.Results
		m.homeModel.SetResults(msg.Config, msg.Results)
		m.scenariosModel.SetScenarios(msg.Config.Scenarios)
		m.cashFlowModel.SetForecast(msg.Results.CashFlow)
		m.healthModel.SetSnapshot(msg.Results)

		name := m.selectedScenario
		if msg.Config.FindScenario(name) == nil {
			name = ""
			if len(msg.Config.Scenarios) > 0 {
				name = msg.Config.Scenarios[0].Name
			}
		}
		m.selectScenario(name)
		m.resize()
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		m.selectScenario(msg.ScenarioName)
		return m, navigate(SceneSchedule)

	case tuimsg.ComparisonRequestedMsg:
		return m, compareCmd(m.compareEngine, m.config, msg)

	case tuimsg.ComparisonCompleteMsg:
		if msg.Err != nil {
			m.compareModel.SetResult(nil)
			m.err = msg.Err
			return m, nil
		}
		m.compareModel.SetResult(msg.Set)
		return m, nil

	case tuimsg.GoalSeekRequestedMsg:
		return m, goalSeekCmd(m.solver, msg.Request)

	case tuimsg.GoalSeekCompleteMsg:
		m.goalModel.SetResult(msg.Result, msg.Err)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: scene} }
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// the goal input owns the keyboard while it is focused
	if m.currentScene == SceneGoal && m.goalModel.Editing() {
		return m.updateCurrentScene(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.currentScene == SceneHome {
			return m, nil
		}
		back := SceneHome
		if m.previousScene != m.currentScene {
			back = m.previousScene
		}
		return m, navigate(back)

	case key.Matches(msg, m.keys.Reload):
		if m.loading || m.configPath == "" {
			return m, nil
		}
		m.loading = true
		m.loadingMessage = "Reloading " + m.configPath + "..."
		return m, tea.Batch(m.spinner.Tick, loadResultsCmd(m.configPath, m.calcEngine))
	}

	for _, nav := range m.keys.scenes() {
		if key.Matches(msg, nav.binding) && m.currentScene != nav.scene {
			return m, navigate(nav.scene)
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneSchedule:
		m.scheduleModel, cmd = m.scheduleModel.Update(msg)
	case SceneCashFlow:
		m.cashFlowModel, cmd = m.cashFlowModel.Update(msg)
	case SceneHealth:
		m.healthModel, cmd = m.healthModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneGoal:
		m.goalModel, cmd = m.goalModel.Update(msg)
	}
	return m, cmd
}
