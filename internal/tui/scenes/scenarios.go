package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/tui/components"
	"github.com/rgehrsitz/finproj/internal/tui/tuimsg"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
	"github.com/rgehrsitz/finproj/pkg/money"
)

// ScenariosModel represents the scenarios browsing scene
type ScenariosModel struct {
	scenarios     []domain.Scenario
	selectedIndex int
	cards         []*components.ScenarioCard
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios updates the scenarios list
func (m *ScenariosModel) SetScenarios(scenarios []domain.Scenario) {
	m.scenarios = scenarios
	m.cards = make([]*components.ScenarioCard, len(scenarios))
	for i, s := range scenarios {
		m.cards[i] = components.NewScenarioCard(s)
	}
	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently selected scenario name
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keySelect = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	keyTop    = key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top"))
	keyBottom = key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom"))
)

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyUp):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, keyDown):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, keyTop):
		m.selectedIndex = 0
	case key.Matches(keyMsg, keyBottom):
		m.selectedIndex = max(len(m.scenarios)-1, 0)
	case key.Matches(keyMsg, keySelect):
		return m, m.selectScenario()
	}
	return m, nil
}

func (m *ScenariosModel) selectScenario() tea.Cmd {
	name := m.SelectedScenario()
	if name == "" {
		return nil
	}
	return func() tea.Msg {
		return tuimsg.ScenarioSelectedMsg{ScenarioName: name}
	}
}

// View renders the scenarios scene
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return "No scenarios available.\n\nAdd scenarios to the configuration file.\n\nPress ESC to return home."
	}

	for i, card := range m.cards {
		card.SetSelected(i == m.selectedIndex)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		components.ScenarioListCompact(m.cards, m.selectedIndex),
		"  ",
		m.cards[m.selectedIndex].Render()+"\n"+renderScenarioDetails(m.scenarios[m.selectedIndex]),
	)
	return content + "\n\n" + tuistyles.HelpStyle.Render("↑/k up • ↓/j down • enter open schedule • home/end • esc back")
}

func renderScenarioDetails(s domain.Scenario) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(tuistyles.MetricLabelStyle.Render(fmt.Sprintf("  %-22s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if l := s.Loan; l != nil {
		b.WriteString(tuistyles.SectionStyle.Render("Loan"))
		b.WriteString("\n")
		row("Requested amount", money.Format(l.RequestedAmount))
		row("Down payment", money.Format(l.DownPayment))
		row("Term", fmt.Sprintf("%d months", l.TermMonths))
		row("Annual rate", money.FormatPercent(l.AnnualRatePercent))
	}
	if inv := s.Investment; inv != nil {
		b.WriteString(tuistyles.SectionStyle.Render("Investment"))
		b.WriteString("\n")
		row("Initial balance", money.Format(inv.InitialBalance))
		row("Monthly contribution", money.Format(inv.MonthlyContribution))
		row("Months", fmt.Sprintf("%d", inv.Months))
		row("Annual rate", money.FormatPercent(inv.AnnualRatePercent))
	}
	if r := s.Retirement; r != nil {
		b.WriteString(tuistyles.SectionStyle.Render("Retirement"))
		b.WriteString("\n")
		row("Ages", fmt.Sprintf("%d → %d", r.CurrentAge, r.RetirementAge))
		row("Salary", money.Format(r.CurrentSalary))
		row("Savings rate", money.FormatPercent(r.SavingsRatePercent))
		row("Growth / inflation", money.FormatPercent(r.AnnualGrowthRatePercent)+" / "+money.FormatPercent(r.AnnualInflationRatePercent))
	}
	return b.String()
}
