package transform

import (
	"fmt"

	"github.com/rgehrsitz/finproj/internal/domain"
)

// ScenarioTransform is a composable edit of a scenario's parameters. The
// compare and goal-seeking packages build their variants from transforms.
type ScenarioTransform interface {
	// Apply returns a modified copy of base. base itself is never changed.
	Apply(base *domain.Scenario) (*domain.Scenario, error)

	// Name returns a short identifier for this transform (e.g., "adjust_term").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform against base without applying it.
	Validate(base *domain.Scenario) error
}

// ApplyTransforms applies transforms in order, each one receiving the output
// of the previous one.
func ApplyTransforms(base *domain.Scenario, transforms []ScenarioTransform) (*domain.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	if len(transforms) == 0 {
		return base.DeepCopy(), nil
	}

	current := base
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

// requireBlock reports a TransformError when the scenario lacks the block a
// transform edits.
func requireBlock(name string, base *domain.Scenario, present func(*domain.Scenario) bool, block string) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	if !present(base) {
		return NewTransformError(name, "validate", fmt.Sprintf("scenario %s has no %s block", base.Name, block), nil)
	}
	return nil
}

func hasLoan(s *domain.Scenario) bool       { return s.Loan != nil }
func hasInvestment(s *domain.Scenario) bool { return s.Investment != nil }
func hasRetirement(s *domain.Scenario) bool { return s.Retirement != nil }
