package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/tui/components"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
)

// HomeModel represents the home dashboard scene
type HomeModel struct {
	config  *domain.Configuration
	results *domain.Results
	width   int
	height  int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetResults updates the configuration and its computed results.
func (m *HomeModel) SetResults(config *domain.Configuration, results *domain.Results) {
	m.config = config
	m.results = results
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene. Navigation is handled by the
// parent.
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the home dashboard
func (m *HomeModel) View() string {
	if m.results == nil {
		return tuistyles.BorderStyle.Render(
			tuistyles.TitleStyle.Render("Financial Projections") + "\n\n" +
				tuistyles.SubtitleStyle.Render("Loading configuration..."),
		)
	}

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Financial Projections"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("As of %s • %d scenario%s",
		dateutil.MonthLabel(m.results.AsOf), len(m.results.Scenarios), pluralS(len(m.results.Scenarios)))))
	b.WriteString("\n\n")

	if cards := m.scenarioCards(); len(cards) > 0 {
		b.WriteString(tuistyles.SectionStyle.Render("Scenarios"))
		b.WriteString("\n")
		b.WriteString(components.MetricGrid(cards, m.columns()))
		b.WriteString("\n\n")
	}

	if cards := m.ledgerCards(); len(cards) > 0 {
		b.WriteString(tuistyles.SectionStyle.Render("Ledger"))
		b.WriteString("\n")
		b.WriteString(components.MetricGrid(cards, m.columns()))
		b.WriteString("\n\n")
	}

	b.WriteString(tuistyles.HelpStyle.Render("s scenarios • d schedule • f cash flow • e health • c compare • g goal seek"))
	return b.String()
}

func (m *HomeModel) columns() int {
	if m.width <= 0 {
		return 3
	}
	return max(1, m.width/28)
}

// scenarioCards shows the headline figure of every block.
func (m *HomeModel) scenarioCards() []*components.MetricCard {
	var cards []*components.MetricCard
	for _, r := range m.results.Scenarios {
		if r.Loan != nil {
			cards = append(cards, components.NewAmountCard(r.Name+" installment", r.Loan.Installment).
				WithDescription(fmt.Sprintf("%d months, %s interest", r.Loan.TermMonths(), tuistyles.FormatCurrency(r.Loan.TotalInterest))))
		}
		if r.Investment != nil {
			cards = append(cards, components.NewAmountCard(r.Name+" balance", r.Investment.FinalBalance).
				WithChange(r.Investment.TotalGain).
				WithDescription("after gains"))
		}
		if r.Retirement != nil {
			cards = append(cards, components.NewAmountCard(r.Name+" income", r.Retirement.MonthlyIncomeEstimate).
				WithDescription("monthly at retirement"))
		}
	}
	return cards
}

func (m *HomeModel) ledgerCards() []*components.MetricCard {
	var cards []*components.MetricCard
	if cf := m.results.CashFlow; cf != nil {
		cards = append(cards, components.NewAmountCard("Forecast net", cf.TotalNet).
			WithDescription(fmt.Sprintf("over %d months", cf.HorizonMonths)))
	}
	if h := m.results.Health; h != nil {
		cards = append(cards, components.NewMetricCard("Financial health", fmt.Sprintf("%s (%d)", h.Label, h.Score)).
			WithDescription("debt ratio "+h.DebtRatio.StringFixed(2)+"%"))
	}
	return cards
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
