package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario to compare against
	Templates        []string // Built-in template names to apply
	Transforms       []string // Ad-hoc transform specs, e.g. "adjust_term:months=-6"
}

// Compare runs the base scenario and one variant per template and transform
// spec, then ranks the variants against the base.
func (ce *CompareEngine) Compare(ctx context.Context, config *domain.Configuration, options CompareOptions) (*ComparisonSet, error) {
	base := config.FindScenario(options.BaseScenarioName)
	if base == nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", options.BaseScenarioName)
	}

	variants := &domain.Configuration{Scenarios: []domain.Scenario{*base.DeepCopy()}}
	descriptions := []string{base.Description}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modified.Name = base.Name + "_" + template.Name

		variants.Scenarios = append(variants.Scenarios, *modified)
		descriptions = append(descriptions, template.Description)
	}

	for _, spec := range options.Transforms {
		st, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}

		modified, err := transform.ApplyTransforms(base, []transform.ScenarioTransform{st})
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", spec, err)
		}
		modified.Name = base.Name + "_" + st.Name()

		variants.Scenarios = append(variants.Scenarios, *modified)
		descriptions = append(descriptions, st.Description())
	}

	results, err := ce.CalcEngine.RunScenarios(ctx, variants)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate scenarios: %w", err)
	}

	return ce.buildSet(options.BaseScenarioName, results, descriptions), nil
}

// CompareScenarios compares explicit scenarios of the configuration (not
// using templates).
func (ce *CompareEngine) CompareScenarios(ctx context.Context, config *domain.Configuration, baseScenarioName string, alternativeScenarioNames []string) (*ComparisonSet, error) {
	base := config.FindScenario(baseScenarioName)
	if base == nil {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}

	selected := &domain.Configuration{Scenarios: []domain.Scenario{*base}}
	descriptions := []string{base.Description}
	for _, altName := range alternativeScenarioNames {
		alt := config.FindScenario(altName)
		if alt == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}
		selected.Scenarios = append(selected.Scenarios, *alt)
		descriptions = append(descriptions, alt.Description)
	}

	results, err := ce.CalcEngine.RunScenarios(ctx, selected)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate scenarios: %w", err)
	}

	return ce.buildSet(baseScenarioName, results, descriptions), nil
}

// buildSet treats results[0] as the base.
func (ce *CompareEngine) buildSet(baseName string, results []domain.ScenarioResult, descriptions []string) *ComparisonSet {
	baseResult := ce.MetricsCalculator.CalculateMetrics(&results[0])
	baseResult.Description = descriptions[0]

	alternatives := make([]ComparisonResult, 0, len(results)-1)
	for i := 1; i < len(results); i++ {
		alt := ce.MetricsCalculator.CalculateMetrics(&results[i])
		alt.Description = descriptions[i]
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet
}
