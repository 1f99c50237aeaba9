package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings. Scene bindings live with their scenes.
type keyMap struct {
	Home      key.Binding
	Scenarios key.Binding
	Schedule  key.Binding
	CashFlow  key.Binding
	Health    key.Binding
	Compare   key.Binding
	Goal      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Scenarios: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scenarios")),
		Schedule:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "schedule")),
		CashFlow:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cash flow")),
		Health:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "health")),
		Compare:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Goal:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goal")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Scenarios, k.Schedule, k.CashFlow, k.Health, k.Compare, k.Goal, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Scenarios, k.Schedule, k.CashFlow},
		{k.Health, k.Compare, k.Goal},
		{k.Reload, k.Help, k.Back, k.Quit},
	}
}

// scenes maps the navigation bindings to their scene.
func (k keyMap) scenes() []struct {
	binding key.Binding
	scene   Scene
} {
	return []struct {
		binding key.Binding
		scene   Scene
	}{
		{k.Home, SceneHome},
		{k.Scenarios, SceneScenarios},
		{k.Schedule, SceneSchedule},
		{k.CashFlow, SceneCashFlow},
		{k.Health, SceneHealth},
		{k.Compare, SceneCompare},
		{k.Goal, SceneGoal},
		{k.Help, SceneHelp},
	}
}
