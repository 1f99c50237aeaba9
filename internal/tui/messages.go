package tui

import (
	"github.com/rgehrsitz/finproj/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneSchedule
	SceneCashFlow
	SceneHealth
	SceneCompare
	SceneGoal
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneSchedule:
		return "Schedule"
	case SceneCashFlow:
		return "Cash Flow"
	case SceneHealth:
		return "Health"
	case SceneCompare:
		return "Compare"
	case SceneGoal:
		return "Goal Seek"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ResultsLoadedMsg carries the configuration and everything computed from it.
type ResultsLoadedMsg struct {
	Config  *domain.Configuration
	Results *domain.Results
}
