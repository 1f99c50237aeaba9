package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
)

// Series is one plotted line. Amounts are converted to float64 for plotting
// only.
type Series struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// NewSeries converts decimal amounts into a plottable series.
func NewSeries(name string, amounts []decimal.Decimal, color lipgloss.Color) Series {
	points := make([]float64, len(amounts))
	for i, a := range amounts {
		points[i] = a.InexactFloat64()
	}
	return Series{Name: name, Points: points, Color: color}
}

// LineChart draws one or more series on a character grid with a money
// y-axis.
type LineChart struct {
	Title  string
	Series []Series
	Labels []string
	Width  int
	Height int
}

// NewLineChart creates a chart with a default 60x12 plot area.
func NewLineChart(title string) *LineChart {
	return &LineChart{Title: title, Width: 60, Height: 12}
}

// Add appends a series.
func (c *LineChart) Add(s Series) *LineChart {
	c.Series = append(c.Series, s)
	return c
}

// WithLabels sets the first and last x-axis labels.
func (c *LineChart) WithLabels(labels []string) *LineChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *LineChart) WithSize(width, height int) *LineChart {
	c.Width = width
	c.Height = height
	return c
}

const yAxisWidth = 10

// Render returns the chart. A chart with fewer than two points renders an
// info line instead.
func (c *LineChart) Render() string {
	lo, hi, ok := c.bounds()
	if !ok {
		return tuistyles.InfoStyle.Render("Not enough data to chart")
	}

	plotWidth := c.Width - yAxisWidth - 3
	if plotWidth < 2 {
		plotWidth = 2
	}
	height := c.Height
	if height < 2 {
		height = 2
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}

	// zero line
	if lo < 0 && hi > 0 {
		zy := scale(0, lo, hi, height)
		for x := range grid[zy] {
			grid[zy][x] = '·'
		}
	}

	glyphs := []rune{'●', '■', '▲', '♦'}
	for si, s := range c.Series {
		glyph := glyphs[si%len(glyphs)]
		prevX, prevY := -1, -1
		for i, p := range s.Points {
			x := i * (plotWidth - 1) / max(len(s.Points)-1, 1)
			y := scale(p, lo, hi, height)
			if prevX >= 0 {
				line(grid, prevX, prevY, x, y, glyph)
			}
			grid[y][x] = glyph
			prevX, prevY = x, y
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.SectionStyle.Render(c.Title))
		b.WriteString("\n")
	}
	for i, row := range grid {
		label := ""
		if i == 0 || i == height-1 || i == height/2 {
			label = axisValue(hi - (hi-lo)*float64(i)/float64(height-1))
		}
		b.WriteString(axis.Render(label))
		b.WriteString(" │ ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", yAxisWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", plotWidth+1))

	if n := len(c.Labels); n > 0 {
		first, last := c.Labels[0], c.Labels[n-1]
		gap := plotWidth + 1 - len(first) - len(last)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yAxisWidth+3))
		b.WriteString(tuistyles.MetricLabelStyle.Render(first + strings.Repeat(" ", max(gap, 1)) + last))
	}

	if len(c.Series) > 1 {
		var items []string
		for i, s := range c.Series {
			items = append(items, lipgloss.NewStyle().Foreground(s.Color).Render(string(glyphs[i%len(glyphs)]))+" "+s.Name)
		}
		b.WriteString("\n")
		b.WriteString(tuistyles.MetricLabelStyle.Render(strings.Join(items, "  ")))
	}
	return b.String()
}

func (c *LineChart) bounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		if len(s.Points) > 1 {
			ok = true
		}
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if !ok {
		return 0, 0, false
	}
	if hi == lo {
		hi, lo = hi+1, lo-1
	}
	return lo, hi, true
}

// scale maps v onto a row index, top row being hi.
func scale(v, lo, hi float64, height int) int {
	y := height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
	return min(max(y, 0), height-1)
}

// line draws between two cells with Bresenham's algorithm, leaving existing
// glyphs in place.
func line(grid [][]rune, x0, y0, x1, y1 int, glyph rune) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if grid[y0][x0] == ' ' || grid[y0][x0] == '·' {
			grid[y0][x0] = glyph
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func axisValue(v float64) string {
	switch {
	case math.Abs(v) >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case math.Abs(v) >= 10_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
