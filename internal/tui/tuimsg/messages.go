// Package tuimsg defines the messages scenes send to the root model. It sits
// apart from package tui so scenes can emit them without an import cycle.
package tuimsg

import (
	"github.com/rgehrsitz/finproj/internal/breakeven"
	"github.com/rgehrsitz/finproj/internal/compare"
)

// ScenarioSelectedMsg signals a scenario has been selected
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ComparisonRequestedMsg asks the root model to compare the base scenario
// against the named templates.
type ComparisonRequestedMsg struct {
	BaseScenario string
	Templates    []string
}

// ComparisonCompleteMsg signals a comparison has finished
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// GoalSeekRequestedMsg asks the root model to run the solver.
type GoalSeekRequestedMsg struct {
	Request breakeven.Request
}

// GoalSeekCompleteMsg carries the solver outcome.
type GoalSeekCompleteMsg struct {
	Result *breakeven.Result
	Err    error
}
