// Package tuistyles holds the palette and lipgloss styles shared by the TUI
// scenes and components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finproj/pkg/money"
)

var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#04B575")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("#43BF6D")
	ColorWarning   = lipgloss.Color("#F2C94C")
	ColorDanger    = lipgloss.Color("#E74C3C")
	ColorInfo      = lipgloss.Color("#3C9BE7")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#888888")
	ColorBorder     = lipgloss.Color("#444444")

	ColorChartLine1 = lipgloss.Color("#43BF6D")
	ColorChartLine2 = lipgloss.Color("#E74C3C")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// MetricTrendStyle picks the colour of a change indicator.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns the arrow for a change indicator.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders an amount the way the reports do.
func FormatCurrency(d decimal.Decimal) string {
	return money.Format(d)
}

// AmountStyle colours negative amounts.
func AmountStyle(d decimal.Decimal) lipgloss.Style {
	if d.IsNegative() {
		return MetricNegativeStyle
	}
	return MetricValueStyle
}

// ApplyTheme switches the neutral palette. "light" suits light terminal
// backgrounds; any other name keeps the dark defaults.
func ApplyTheme(name string) {
	switch name {
	case "light":
		ColorForeground = lipgloss.Color("#1A1A1A")
		ColorMuted = lipgloss.Color("#666666")
		ColorBorder = lipgloss.Color("#BBBBBB")
	default:
		ColorForeground = lipgloss.Color("#FAFAFA")
		ColorMuted = lipgloss.Color("#888888")
		ColorBorder = lipgloss.Color("#444444")
	}

	SubtitleStyle = SubtitleStyle.Foreground(ColorMuted)
	StatusBarStyle = StatusBarStyle.Foreground(ColorMuted)
	BorderStyle = BorderStyle.BorderForeground(ColorBorder)
	UnselectedItemStyle = UnselectedItemStyle.Foreground(ColorForeground)
	MetricLabelStyle = MetricLabelStyle.Foreground(ColorMuted)
	MetricValueStyle = MetricValueStyle.Foreground(ColorForeground)
	HelpStyle = HelpStyle.Foreground(ColorMuted)
}
