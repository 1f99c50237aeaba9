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

// HealthModel shows the financial health score of the reference month.
type HealthModel struct {
	snapshot *domain.HealthSnapshot
	asOf     string
	width    int
	height   int
}

// NewHealthModel creates an empty health scene.
func NewHealthModel() *HealthModel {
	return &HealthModel{}
}

// SetSnapshot replaces the snapshot on screen.
func (m *HealthModel) SetSnapshot(results *domain.Results) {
	m.snapshot = nil
	m.asOf = ""
	if results != nil {
		m.snapshot = results.Health
		m.asOf = dateutil.MonthLabel(results.AsOf)
	}
}

// SetSize updates the scene dimensions
func (m *HealthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the health scene
func (m *HealthModel) Update(msg tea.Msg) (*HealthModel, tea.Cmd) {
	return m, nil
}

// View renders the health scene
func (m *HealthModel) View() string {
	h := m.snapshot
	if h == nil {
		return "No health score.\n\nAdd a health or ledger block to the configuration."
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = min(max(m.width-40, 10), 60)
	}

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Financial Health"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Month " + m.asOf))
	b.WriteString("\n\n")

	b.WriteString(components.MetricGrid([]*components.MetricCard{
		components.NewAmountCard("Income", h.Income),
		components.NewAmountCard("Expense", h.Expense),
		components.NewAmountCard("Investment", h.Investment),
		components.NewAmountCard("Net balance", h.NetBalance),
	}, 4))
	b.WriteString("\n\n")

	b.WriteString(components.RatioBar("Debt ratio", h.DebtRatio, 18, barWidth))
	b.WriteString("\n")
	b.WriteString(components.RatioBar("Investment ratio", h.InvestmentRatio, 18, barWidth))
	b.WriteString("\n")
	b.WriteString(components.RatioBar("Savings ratio", h.SavingsRatio, 18, barWidth))
	b.WriteString("\n\n")

	b.WriteString(tuistyles.SectionStyle.Render(fmt.Sprintf("Rating: %s", h.Label)))
	b.WriteString("\n")
	b.WriteString(components.ScoreBar(h.Score, barWidth))
	b.WriteString("\n")
	b.WriteString(tuistyles.MetricLabelStyle.Render(fmt.Sprintf("  base score %d", h.BaseScore)))
	b.WriteString("\n")
	for _, adj := range h.Adjustments {
		b.WriteString(tuistyles.MetricPositiveStyle.Render(fmt.Sprintf("  %+d %s", adj.Points, adj.Reason)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.HelpStyle.Render("esc back"))
	return b.String()
}
