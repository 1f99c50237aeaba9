package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
	"github.com/rgehrsitz/finproj/pkg/money"
)

// MetricCard displays a single figure with a label and an optional change
// against a reference value.
type MetricCard struct {
	Label       string
	Value       string
	Change      *decimal.Decimal
	Negative    bool
	Description string
	Width       int
}

// NewMetricCard creates a card for a preformatted value.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// NewAmountCard creates a card for a money amount. Negative amounts are
// rendered in the danger colour.
func NewAmountCard(label string, amount decimal.Decimal) *MetricCard {
	card := NewMetricCard(label, money.Format(amount))
	card.Negative = amount.IsNegative()
	return card
}

// WithChange adds a signed change indicator.
func (m *MetricCard) WithChange(change decimal.Decimal) *MetricCard {
	m.Change = &change
	return m
}

// WithDescription adds a muted line under the value.
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) body(sep string) string {
	valueStyle := tuistyles.MetricValueStyle
	if m.Negative {
		valueStyle = tuistyles.MetricNegativeStyle
	}
	out := valueStyle.Render(m.Value)

	if m.Change != nil && !m.Change.IsZero() {
		up := m.Change.IsPositive()
		out += sep + tuistyles.MetricTrendStyle(up).Render(tuistyles.TrendIndicator(up)+" "+money.Format(m.Change.Abs()))
	}
	return out
}

// Render returns the bordered card.
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + m.body("\n")
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns a one-line "label: value" form.
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + m.body(" ")
}

// MetricGrid lays cards out in rows of columns.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	var row []string
	for i, card := range cards {
		row = append(row, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
