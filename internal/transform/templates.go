package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Category    string
	Transforms  []ScenarioTransform
}

// Template categories, in help order.
const (
	CategoryLoan       = "Loan"
	CategoryInvestment = "Investment"
	CategoryRetirement = "Retirement"
)

var categoryOrder = []string{CategoryLoan, CategoryInvestment, CategoryRetirement}

// NewTemplateRegistry creates an empty template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all registered template names, sorted.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common what-if
// variants of loan, investment and retirement scenarios.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "term_minus_12",
		Description: "Shorten the loan by 12 months",
		Category:    CategoryLoan,
		Transforms:  []ScenarioTransform{&AdjustLoanTerm{Months: -12}},
	})
	registry.Register(Template{
		Name:        "term_plus_12",
		Description: "Lengthen the loan by 12 months",
		Category:    CategoryLoan,
		Transforms:  []ScenarioTransform{&AdjustLoanTerm{Months: 12}},
	})
	registry.Register(Template{
		Name:        "rate_minus_1",
		Description: "Negotiate the loan rate down 1 point",
		Category:    CategoryLoan,
		Transforms:  []ScenarioTransform{&AdjustLoanRate{DeltaPercent: decimal.NewFromInt(-1)}},
	})
	registry.Register(Template{
		Name:        "rate_plus_1",
		Description: "Loan rate 1 point higher",
		Category:    CategoryLoan,
		Transforms:  []ScenarioTransform{&AdjustLoanRate{DeltaPercent: decimal.NewFromInt(1)}},
	})
	registry.Register(Template{
		Name:        "down_payment_plus_10pct",
		Description: "Put down an extra 10% of the requested amount",
		Category:    CategoryLoan,
		Transforms:  []ScenarioTransform{&AdjustDownPayment{PercentOfAmount: decimal.NewFromInt(10)}},
	})

	registry.Register(Template{
		Name:        "contribution_plus_100",
		Description: "Invest 100 more every month",
		Category:    CategoryInvestment,
		Transforms:  []ScenarioTransform{&AdjustContribution{Delta: decimal.NewFromInt(100)}},
	})
	registry.Register(Template{
		Name:        "growth_minus_2",
		Description: "Stress test: growth 2 points lower",
		Category:    CategoryInvestment,
		Transforms:  []ScenarioTransform{&AdjustGrowthRate{DeltaPercent: decimal.NewFromInt(-2)}},
	})

	registry.Register(Template{
		Name:        "retire_plus_2",
		Description: "Retire 2 years later",
		Category:    CategoryRetirement,
		Transforms:  []ScenarioTransform{&PostponeRetirement{Years: 2}},
	})
	registry.Register(Template{
		Name:        "retire_minus_2",
		Description: "Retire 2 years earlier",
		Category:    CategoryRetirement,
		Transforms:  []ScenarioTransform{&PostponeRetirement{Years: -2}},
	})
	registry.Register(Template{
		Name:        "save_more_5",
		Description: "Save 5 more points of salary",
		Category:    CategoryRetirement,
		Transforms:  []ScenarioTransform{&AdjustSavingsRate{DeltaPercent: decimal.NewFromInt(5)}},
	})

	return registry
}

// ApplyTemplate applies a template to a base scenario. The result is named
// after the template.
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	out, err := ApplyTransforms(base, template.Transforms)
	if err != nil {
		return nil, err
	}
	out.Name = template.Name
	out.Description = template.Description
	return out, nil
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	for _, name := range registry.List() {
		t := registry.templates[name]
		categories[t.Category] = append(categories[t.Category], t)
	}

	for _, category := range categoryOrder {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-26s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  finproj compare plan.yaml --base car --with term_minus_12,rate_minus_1\n")

	return sb.String()
}
