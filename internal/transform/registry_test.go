package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec     string
		wantName string
		check    func(t *testing.T, st ScenarioTransform)
	}{
		{"adjust_term:months=-12", "adjust_term", func(t *testing.T, st ScenarioTransform) {
			assert.Equal(t, -12, st.(*AdjustLoanTerm).Months)
		}},
		{"set_term: months = 36 ", "set_term", func(t *testing.T, st ScenarioTransform) {
			assert.Equal(t, 36, st.(*SetLoanTerm).Months)
		}},
		{"adjust_rate:delta=-0.5", "adjust_rate", func(t *testing.T, st ScenarioTransform) {
			assert.True(t, dec("-0.5").Equal(st.(*AdjustLoanRate).DeltaPercent))
		}},
		{"adjust_down_payment:percent=15", "adjust_down_payment", func(t *testing.T, st ScenarioTransform) {
			assert.True(t, dec("15").Equal(st.(*AdjustDownPayment).PercentOfAmount))
		}},
		{"adjust_contribution:delta=100", "adjust_contribution", nil},
		{"set_contribution:amount=250.50", "set_contribution", nil},
		{"adjust_growth:delta=-2", "adjust_growth", nil},
		{"postpone_retirement:years=3", "postpone_retirement", func(t *testing.T, st ScenarioTransform) {
			assert.Equal(t, 3, st.(*PostponeRetirement).Years)
		}},
		{"adjust_savings_rate:delta=5", "adjust_savings_rate", nil},
		{"set_savings_rate:percent=20", "set_savings_rate", nil},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			st, err := registry.ParseTransformSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, st.Name())
			if tt.check != nil {
				tt.check(t, st)
			}
		})
	}
}

func TestTransformRegistry_ParseErrors(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec    string
		wantErr string
	}{
		{"adjust_term", "invalid transform spec format"},
		{"adjust_term:months", "invalid parameter format"},
		{"adjust_term:", "adjust_term requires 'months' parameter"},
		{"adjust_term:months=soon", "invalid months value"},
		{"adjust_rate:delta=abc", "invalid delta value"},
		{"refinance:rate=3", "unknown transform: refinance"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	assert.Len(t, names, 10)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "postpone_retirement")
}
