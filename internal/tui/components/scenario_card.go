package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
	"github.com/rgehrsitz/finproj/pkg/money"
)

// ScenarioCard summarizes the blocks of one scenario.
type ScenarioCard struct {
	Name        string
	Description string
	Highlights  []string
	IsSelected  bool
	Width       int
}

// NewScenarioCard builds a card from the scenario inputs.
func NewScenarioCard(s domain.Scenario) *ScenarioCard {
	card := &ScenarioCard{
		Name:        s.Name,
		Description: s.Description,
		Width:       50,
	}
	if s.Loan != nil {
		card.Highlights = append(card.Highlights, fmt.Sprintf("Loan %s over %d months at %s",
			money.Format(s.Loan.PrincipalToFinance()), s.Loan.TermMonths, money.FormatPercent(s.Loan.AnnualRatePercent)))
	}
	if s.Investment != nil {
		card.Highlights = append(card.Highlights, fmt.Sprintf("Invest %s/month for %d months at %s",
			money.Format(s.Investment.MonthlyContribution), s.Investment.Months, money.FormatPercent(s.Investment.AnnualRatePercent)))
	}
	if s.Retirement != nil {
		card.Highlights = append(card.Highlights, fmt.Sprintf("Retire at %d saving %s of salary",
			s.Retirement.RetirementAge, money.FormatPercent(s.Retirement.SavingsRatePercent)))
	}
	if len(card.Highlights) == 0 {
		card.Highlights = []string{"No simulations"}
	}
	return card
}

// SetSelected marks the card as selected
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the bordered card.
func (s *ScenarioCard) Render() string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	if s.Description != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(s.Description))
	}
	content.WriteString("\n")
	for _, h := range s.Highlights {
		content.WriteString("\n")
		content.WriteString(tuistyles.MetricLabelStyle.Render("• " + h))
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(content.String())
}

// RenderCompact returns the name and first highlight on one line.
func (s *ScenarioCard) RenderCompact() string {
	return s.Name + " " + tuistyles.MetricLabelStyle.Render("• "+s.Highlights[0])
}

// ScenarioListCompact renders a cursor list for selection menus.
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	lines := make([]string, len(cards))
	for i, card := range cards {
		if i == selectedIndex {
			lines[i] = tuistyles.SelectedItemStyle.Render("▸ " + card.RenderCompact())
		} else {
			lines[i] = tuistyles.UnselectedItemStyle.Render("  " + card.RenderCompact())
		}
	}
	return strings.Join(lines, "\n")
}
