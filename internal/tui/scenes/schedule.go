package scenes

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/tui/components"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
)

// Block names one simulation of a scenario.
type Block string

const (
	BlockLoan       Block = "Loan"
	BlockInvestment Block = "Investment"
	BlockRetirement Block = "Retirement"
)

// ScheduleModel shows the period-by-period table of one scenario.
type ScheduleModel struct {
	result *domain.ScenarioResult
	blocks []Block
	active int
	table  table.Model
	width  int
	height int
}

var keyNextBlock = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next block"))

// NewScheduleModel creates an empty schedule scene.
func NewScheduleModel() *ScheduleModel {
	t := table.New(table.WithFocused(true), table.WithHeight(12))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(tuistyles.ColorForeground).Background(tuistyles.ColorPrimary)
	t.SetStyles(styles)
	return &ScheduleModel{table: t}
}

// SetResult shows result, starting with its first block.
func (m *ScheduleModel) SetResult(result *domain.ScenarioResult) {
	m.result = result
	m.blocks = nil
	m.active = 0
	if result != nil {
		if result.Loan != nil {
			m.blocks = append(m.blocks, BlockLoan)
		}
		if result.Investment != nil {
			m.blocks = append(m.blocks, BlockInvestment)
		}
		if result.Retirement != nil {
			m.blocks = append(m.blocks, BlockRetirement)
		}
	}
	m.refresh()
}

// ActiveBlock returns the block on screen, or "" when there is none.
func (m *ScheduleModel) ActiveBlock() Block {
	if len(m.blocks) == 0 {
		return ""
	}
	return m.blocks[m.active]
}

// SetSize updates the scene dimensions
func (m *ScheduleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-12, 5))
}

// Update handles messages for the schedule scene
func (m *ScheduleModel) Update(msg tea.Msg) (*ScheduleModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keyNextBlock) && len(m.blocks) > 0 {
		m.active = (m.active + 1) % len(m.blocks)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refresh rebuilds the table for the active block. Columns are replaced
// after the rows are cleared so no row is wider than the header.
func (m *ScheduleModel) refresh() {
	m.table.SetRows(nil)
	cols, rows := m.tableFor(m.ActiveBlock())
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScheduleModel) tableFor(block Block) ([]table.Column, []table.Row) {
	amount := func(title string) table.Column { return table.Column{Title: title, Width: 16} }

	switch block {
	case BlockLoan:
		cols := []table.Column{{Title: "Period", Width: 8}, amount("Interest"), amount("Principal"), amount("Balance")}
		rows := make([]table.Row, len(m.result.Loan.Schedule))
		for i, r := range m.result.Loan.Schedule {
			rows[i] = table.Row{strconv.Itoa(r.Period), tuistyles.FormatCurrency(r.Interest),
				tuistyles.FormatCurrency(r.Principal), tuistyles.FormatCurrency(r.RemainingBalance)}
		}
		return cols, rows
	case BlockInvestment:
		cols := []table.Column{{Title: "Month", Width: 8}, amount("Balance"), amount("Contributed"), amount("Gain")}
		rows := make([]table.Row, len(m.result.Investment.Projection))
		for i, r := range m.result.Investment.Projection {
			rows[i] = table.Row{strconv.Itoa(r.Period), tuistyles.FormatCurrency(r.Balance),
				tuistyles.FormatCurrency(r.CumulativeContributions), tuistyles.FormatCurrency(r.CumulativeGain)}
		}
		return cols, rows
	case BlockRetirement:
		cols := []table.Column{{Title: "Year", Width: 6}, {Title: "Age", Width: 5}, amount("Balance"), amount("Income/mo")}
		rows := make([]table.Row, len(m.result.Retirement.Projection))
		for i, r := range m.result.Retirement.Projection {
			rows[i] = table.Row{strconv.Itoa(r.Year), strconv.Itoa(r.Age),
				tuistyles.FormatCurrency(r.Balance), tuistyles.FormatCurrency(r.MonthlyIncome)}
		}
		return cols, rows
	}
	return []table.Column{{Title: "Period", Width: 8}}, nil
}

// View renders the schedule scene
func (m *ScheduleModel) View() string {
	if m.result == nil {
		return "No scenario selected.\n\nPick one from the scenarios screen (s) and press enter."
	}
	if len(m.blocks) == 0 {
		return fmt.Sprintf("Scenario %s has no loan, investment or retirement block.", m.result.Name)
	}

	header := tuistyles.TitleStyle.Render(m.result.Name) + "  " + m.tabs()
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.summary(),
		"",
		m.table.View(),
		"",
		tuistyles.HelpStyle.Render("tab next block • ↑/↓ scroll • esc back"),
	)
}

func (m *ScheduleModel) tabs() string {
	var out string
	for i, b := range m.blocks {
		label := " " + string(b) + " "
		if i == m.active {
			out += tuistyles.SelectedItemStyle.Render("[" + label + "]")
		} else {
			out += tuistyles.MetricLabelStyle.Render(" " + label + " ")
		}
	}
	return out
}

func (m *ScheduleModel) summary() string {
	var cards []*components.MetricCard
	switch m.ActiveBlock() {
	case BlockLoan:
		l := m.result.Loan
		cards = []*components.MetricCard{
			components.NewAmountCard("Installment", l.Installment).WithDescription(fmt.Sprintf("x %d months", l.TermMonths())),
			components.NewAmountCard("Total paid", l.TotalPaid),
			components.NewAmountCard("Total interest", l.TotalInterest),
		}
	case BlockInvestment:
		inv := m.result.Investment
		cards = []*components.MetricCard{
			components.NewAmountCard("Final balance", inv.FinalBalance),
			components.NewAmountCard("Contributions", inv.TotalContributions),
			components.NewAmountCard("Gain", inv.TotalGain),
		}
	case BlockRetirement:
		r := m.result.Retirement
		cards = []*components.MetricCard{
			components.NewAmountCard("Final balance", r.FinalBalance).WithDescription(fmt.Sprintf("after %d years", r.ContributionYears)),
			components.NewAmountCard("Monthly savings", r.MonthlySavings),
			components.NewAmountCard("Monthly income", r.MonthlyIncomeEstimate),
		}
	}
	return components.MetricGrid(cards, 3)
}
