package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/tui/components"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
)

// CashFlowModel shows the recurring-ledger forecast.
type CashFlowModel struct {
	forecast *domain.CashFlowForecast
	table    table.Model
	width    int
	height   int
}

// NewCashFlowModel creates an empty cash flow scene.
func NewCashFlowModel() *CashFlowModel {
	cols := []table.Column{
		{Title: "Month", Width: 8},
		{Title: "Income", Width: 14},
		{Title: "Expense", Width: 14},
		{Title: "Net", Width: 14},
		{Title: "Cumulative", Width: 14},
	}
	return &CashFlowModel{table: table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(8))}
}

// SetForecast replaces the forecast on screen. A nil forecast shows the
// empty state.
func (m *CashFlowModel) SetForecast(f *domain.CashFlowForecast) {
	m.forecast = f
	if f == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(f.Periods))
	cumulative := m.cumulative()
	for i, p := range f.Periods {
		rows[i] = table.Row{p.Month, tuistyles.FormatCurrency(p.Income), tuistyles.FormatCurrency(p.Expense),
			tuistyles.FormatCurrency(p.Net), tuistyles.FormatCurrency(cumulative[i])}
	}
	m.table.SetRows(rows)
}

// SetSize updates the scene dimensions
func (m *CashFlowModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-24, 4))
}

// Update handles messages for the cash flow scene
func (m *CashFlowModel) Update(msg tea.Msg) (*CashFlowModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *CashFlowModel) cumulative() []decimal.Decimal {
	out := make([]decimal.Decimal, len(m.forecast.Periods))
	running := decimal.Zero
	for i, p := range m.forecast.Periods {
		running = running.Add(p.Net)
		out[i] = running
	}
	return out
}

// View renders the cash flow scene
func (m *CashFlowModel) View() string {
	if m.forecast == nil {
		return "No cash flow forecast.\n\nAdd a cash_flow or ledger block to the configuration."
	}
	f := m.forecast

	cards := components.MetricGrid([]*components.MetricCard{
		components.NewAmountCard("Total income", f.TotalIncome),
		components.NewAmountCard("Total expense", f.TotalExpense),
		components.NewAmountCard("Total net", f.TotalNet),
	}, 3)

	nets := make([]decimal.Decimal, len(f.Periods))
	labels := make([]string, len(f.Periods))
	for i, p := range f.Periods {
		nets[i] = p.Net
		labels[i] = p.Month
	}
	chartWidth := 60
	if m.width > 0 {
		chartWidth = min(max(m.width-4, 30), 100)
	}
	chart := components.NewLineChart("Net and cumulative balance").
		WithSize(chartWidth, 8).
		WithLabels(labels).
		Add(components.NewSeries("net", nets, tuistyles.ColorChartLine1)).
		Add(components.NewSeries("cumulative", m.cumulative(), tuistyles.ColorInfo))

	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.TitleStyle.Render("Cash Flow Forecast"),
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d months from %s", f.HorizonMonths, dateutil.MonthLabel(f.Start))),
		"",
		cards,
		"",
		chart.Render(),
		"",
		m.table.View(),
		"",
		tuistyles.HelpStyle.Render("↑/↓ scroll • esc back"),
	)
}
