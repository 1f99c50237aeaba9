package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
)

// ColorForScore returns the bar colour for a 0-100 health score.
func ColorForScore(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return tuistyles.ColorSuccess
	case score >= 60:
		return tuistyles.ColorInfo
	case score >= 40:
		return tuistyles.ColorWarning
	default:
		return tuistyles.ColorDanger
	}
}

// ScoreBar renders a health score as a solid bar followed by "score/100".
func ScoreBar(score, width int) string {
	pct := float64(min(max(score, 0), 100)) / 100
	color := ColorForScore(score)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(tuistyles.ColorBorder)

	return bar.ViewAs(pct) + " " + lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d/100", score))
}

// RatioBar renders a percentage ratio (80 for 80%) with a label column.
// Ratios above 100 fill the bar.
func RatioBar(label string, ratio decimal.Decimal, labelWidth, width int) string {
	pct := ratio.InexactFloat64() / 100
	pct = min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(tuistyles.ColorInfo)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(tuistyles.ColorBorder)

	return tuistyles.MetricLabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)) + " " +
		bar.ViewAs(pct) + " " + tuistyles.MetricValueStyle.Render(ratio.StringFixed(2)+"%")
}
