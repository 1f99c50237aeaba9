package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry creates transforms from string parameters, useful for
// CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("adjust_term", createAdjustLoanTerm)
	registry.Register("set_term", createSetLoanTerm)
	registry.Register("adjust_rate", createAdjustLoanRate)
	registry.Register("adjust_down_payment", createAdjustDownPayment)

	registry.Register("adjust_contribution", createAdjustContribution)
	registry.Register("set_contribution", createSetContribution)
	registry.Register("adjust_growth", createAdjustGrowthRate)

	registry.Register("postpone_retirement", createPostponeRetirement)
	registry.Register("adjust_savings_rate", createAdjustSavingsRate)
	registry.Register("set_savings_rate", createSetSavingsRate)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "adjust_term:months=-12"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func intParam(transform string, params map[string]string, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func createAdjustLoanTerm(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam("adjust_term", params, "months")
	if err != nil {
		return nil, err
	}
	return &AdjustLoanTerm{Months: months}, nil
}

func createSetLoanTerm(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam("set_term", params, "months")
	if err != nil {
		return nil, err
	}
	return &SetLoanTerm{Months: months}, nil
}

func createAdjustLoanRate(params map[string]string) (ScenarioTransform, error) {
	delta, err := decimalParam("adjust_rate", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustLoanRate{DeltaPercent: delta}, nil
}

func createAdjustDownPayment(params map[string]string) (ScenarioTransform, error) {
	pct, err := decimalParam("adjust_down_payment", params, "percent")
	if err != nil {
		return nil, err
	}
	return &AdjustDownPayment{PercentOfAmount: pct}, nil
}

func createAdjustContribution(params map[string]string) (ScenarioTransform, error) {
	delta, err := decimalParam("adjust_contribution", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustContribution{Delta: delta}, nil
}

func createSetContribution(params map[string]string) (ScenarioTransform, error) {
	amount, err := decimalParam("set_contribution", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetContribution{Amount: amount}, nil
}

func createAdjustGrowthRate(params map[string]string) (ScenarioTransform, error) {
	delta, err := decimalParam("adjust_growth", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustGrowthRate{DeltaPercent: delta}, nil
}

func createPostponeRetirement(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam("postpone_retirement", params, "years")
	if err != nil {
		return nil, err
	}
	return &PostponeRetirement{Years: years}, nil
}

func createAdjustSavingsRate(params map[string]string) (ScenarioTransform, error) {
	delta, err := decimalParam("adjust_savings_rate", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustSavingsRate{DeltaPercent: delta}, nil
}

func createSetSavingsRate(params map[string]string) (ScenarioTransform, error) {
	pct, err := decimalParam("set_savings_rate", params, "percent")
	if err != nil {
		return nil, err
	}
	return &SetSavingsRate{Percent: pct}, nil
}
