package scenes

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finproj/internal/breakeven"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/tui/tuimsg"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
)

// GoalMode is the step of the goal-seek flow.
type GoalMode int

const (
	ModeSelectTarget GoalMode = iota
	ModeEnterGoal
	ModeSolving
	ModeShowResult
)

// GoalModel drives the break-even solver for the selected scenario.
type GoalModel struct {
	base    *domain.Scenario
	targets []breakeven.Target
	cursor  int
	mode    GoalMode
	input   textinput.Model
	result  *breakeven.Result
	err     error
	width   int
	height  int
}

// NewGoalModel creates a new goal-seek scene model
func NewGoalModel() *GoalModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 500"
	ti.CharLimit = 14
	ti.Width = 20
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &GoalModel{input: ti}
}

// SetScenario lists the targets the scenario supports and resets the flow.
func (m *GoalModel) SetScenario(base *domain.Scenario) {
	m.base = base
	m.targets = nil
	m.cursor = 0
	m.mode = ModeSelectTarget
	m.result = nil
	m.err = nil
	m.input.SetValue("")
	m.input.Blur()
	if base == nil {
		return
	}
	if base.Investment != nil {
		m.targets = append(m.targets, breakeven.TargetMonthlyContribution)
	}
	if base.Retirement != nil {
		m.targets = append(m.targets, breakeven.TargetSavingsRate)
	}
	if base.Loan != nil {
		m.targets = append(m.targets, breakeven.TargetLoanTerm)
	}
}

// SetResult shows a finished solve.
func (m *GoalModel) SetResult(result *breakeven.Result, err error) {
	m.result = result
	m.err = err
	m.mode = ModeShowResult
}

// Editing reports whether key presses belong to the text input.
func (m *GoalModel) Editing() bool {
	return m.mode == ModeEnterGoal
}

// Mode returns the current step.
func (m *GoalModel) Mode() GoalMode {
	return m.mode
}

// SetSize updates the model dimensions
func (m *GoalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the goal scene
func (m *GoalModel) Update(msg tea.Msg) (*GoalModel, tea.Cmd) {
	switch m.mode {
	case ModeSelectTarget:
		return m.updateTargetSelection(msg)
	case ModeEnterGoal:
		return m.updateGoalInput(msg)
	case ModeShowResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keyReset) {
			m.mode = ModeSelectTarget
			m.result = nil
			m.err = nil
		}
	}
	return m, nil
}

func (m *GoalModel) updateTargetSelection(msg tea.Msg) (*GoalModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keyUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keyDown):
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keySelect):
		if len(m.targets) == 0 {
			return m, nil
		}
		m.mode = ModeEnterGoal
		m.input.SetValue("")
		m.err = nil
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *GoalModel) updateGoalInput(msg tea.Msg) (*GoalModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			goal, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(m.input.Value(), ",", "")))
			if err != nil || !goal.IsPositive() {
				m.err = errInvalidGoal
				return m, nil
			}
			m.err = nil
			m.mode = ModeSolving
			m.input.Blur()
			req := breakeven.Request{BaseScenario: m.base, Target: m.targets[m.cursor], Goal: goal}
			return m, func() tea.Msg { return tuimsg.GoalSeekRequestedMsg{Request: req} }
		case tea.KeyEsc:
			m.mode = ModeSelectTarget
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

var errInvalidGoal = errors.New("enter a positive amount")

// View renders the goal scene
func (m *GoalModel) View() string {
	if m.base == nil {
		return "No scenario selected.\n\nPick one from the scenarios screen (s) first."
	}

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Goal Seek: " + m.base.Name))
	b.WriteString("\n\n")

	switch m.mode {
	case ModeSelectTarget:
		if len(m.targets) == 0 {
			b.WriteString(tuistyles.ErrorStyle.Render("This scenario has nothing to solve for"))
			break
		}
		b.WriteString(tuistyles.SubtitleStyle.Render("What should be solved for?"))
		b.WriteString("\n\n")
		for i, t := range m.targets {
			line := "  " + targetDescription(t)
			if i == m.cursor {
				line = tuistyles.SelectedItemStyle.Render("❯ " + targetDescription(t))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tuistyles.HelpStyle.Render("↑/↓ move • enter choose • esc back"))

	case ModeEnterGoal:
		b.WriteString(tuistyles.SubtitleStyle.Render(goalPrompt(m.targets[m.cursor])))
		b.WriteString("\n\n")
		b.WriteString("$ " + m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
			b.WriteString("\n\n")
		}
		b.WriteString(tuistyles.HelpStyle.Render("enter solve • esc back"))

	case ModeSolving:
		b.WriteString(tuistyles.InfoStyle.Render("Solving..."))

	case ModeShowResult:
		if m.err != nil {
			b.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
		} else if m.result != nil {
			b.WriteString((&breakeven.TableFormatter{}).Format(m.result))
		}
		b.WriteString("\n")
		b.WriteString(tuistyles.HelpStyle.Render("n new goal • esc back"))
	}
	return b.String()
}

func targetDescription(t breakeven.Target) string {
	switch t {
	case breakeven.TargetMonthlyContribution:
		return "Monthly contribution for a final balance"
	case breakeven.TargetSavingsRate:
		return "Savings rate for a retirement income"
	default:
		return "Shortest loan term for a maximum installment"
	}
}

func goalPrompt(t breakeven.Target) string {
	switch t {
	case breakeven.TargetMonthlyContribution:
		return "Target final balance:"
	case breakeven.TargetSavingsRate:
		return "Target monthly retirement income:"
	default:
		return "Maximum monthly installment:"
	}
}
