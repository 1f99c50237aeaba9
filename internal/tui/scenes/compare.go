package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finproj/internal/compare"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/transform"
	"github.com/rgehrsitz/finproj/internal/tui/tuimsg"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
)

// CompareModel lets the user pick what-if templates for the selected
// scenario and shows the comparison table.
type CompareModel struct {
	base      *domain.Scenario
	templates []transform.Template
	selected  map[int]bool
	cursor    int
	comparing bool
	result    *compare.ComparisonSet
	width     int
	height    int
}

var (
	keyToggle = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle"))
	keyReset  = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new comparison"))
)

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	return &CompareModel{selected: make(map[int]bool)}
}

// SetScenario lists the templates that apply to base.
func (m *CompareModel) SetScenario(base *domain.Scenario) {
	m.base = base
	m.templates = nil
	m.selected = make(map[int]bool)
	m.cursor = 0
	m.result = nil
	m.comparing = false
	if base == nil {
		return
	}

	registry := transform.CreateBuiltInTemplates()
	for _, category := range []string{transform.CategoryLoan, transform.CategoryInvestment, transform.CategoryRetirement} {
		for _, name := range registry.List() {
			t, _ := registry.Get(name)
			if t.Category != category {
				continue
			}
			if _, err := transform.ApplyTemplate(base, t); err == nil {
				m.templates = append(m.templates, t)
			}
		}
	}
}

// SetResult shows a finished comparison. A nil set returns to selection.
func (m *CompareModel) SetResult(set *compare.ComparisonSet) {
	m.result = set
	m.comparing = false
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedTemplates returns the chosen template names in list order.
func (m *CompareModel) SelectedTemplates() []string {
	var names []string
	for i, t := range m.templates {
		if m.selected[i] {
			names = append(names, t.Name)
		}
	}
	return names
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.comparing {
		return m, nil
	}

	if m.result != nil {
		if key.Matches(keyMsg, keyReset) {
			m.result = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keyDown):
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keyToggle):
		if len(m.templates) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(keyMsg, keySelect):
		names := m.SelectedTemplates()
		if len(names) == 0 || m.base == nil {
			return m, nil
		}
		m.comparing = true
		base := m.base.Name
		return m, func() tea.Msg {
			return tuimsg.ComparisonRequestedMsg{BaseScenario: base, Templates: names}
		}
	}
	return m, nil
}

// View renders the compare scene
func (m *CompareModel) View() string {
	if m.base == nil {
		return "No scenario selected.\n\nPick one from the scenarios screen (s) first."
	}
	if m.comparing {
		return tuistyles.InfoStyle.Render("Comparing " + m.base.Name + "...")
	}
	if m.result != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			(&compare.TableFormatter{}).Format(m.result),
			tuistyles.HelpStyle.Render("n new comparison • esc back"),
		)
	}
	return m.renderSelection()
}

func (m *CompareModel) renderSelection() string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Compare " + m.base.Name))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Pick the what-if templates to run against this scenario"))
	b.WriteString("\n\n")

	if len(m.templates) == 0 {
		b.WriteString(tuistyles.ErrorStyle.Render("No template applies to this scenario"))
		return b.String()
	}

	category := ""
	for i, t := range m.templates {
		if t.Category != category {
			category = t.Category
			b.WriteString(tuistyles.SectionStyle.Render(category))
			b.WriteString("\n")
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
		}
		box := "[ ]"
		if m.selected[i] {
			box = "[x]"
		}
		line := cursor + box + " " + t.Name
		if i == m.cursor {
			line = tuistyles.SelectedItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString(tuistyles.MetricLabelStyle.Render("  " + t.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.HelpStyle.Render("↑/↓ move • space toggle • enter compare • esc back"))
	return b.String()
}
