package domain

import (
	"github.com/shopspring/decimal"
)

// Health labels, one per debt-ratio tier.
const (
	HealthCritical  = "Crítica"
	HealthPoor      = "Ruim"
	HealthFair      = "Regular"
	HealthGood      = "Boa"
	HealthExcellent = "Excelente"
)

// HealthInputs are the current-month aggregates fed to the scorer.
type HealthInputs struct {
	Income     decimal.Decimal `yaml:"income" json:"income"`
	Expense    decimal.Decimal `yaml:"expense" json:"expense"`
	Investment decimal.Decimal `yaml:"investment" json:"investment"`
}

// ScoreAdjustment records one bonus applied on top of the base score.
type ScoreAdjustment struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// HealthSnapshot is a scored view of one month's finances.
type HealthSnapshot struct {
	Income          decimal.Decimal   `json:"income"`
	Expense         decimal.Decimal   `json:"expense"`
	Investment      decimal.Decimal   `json:"investment"`
	NetBalance      decimal.Decimal   `json:"net_balance"`
	DebtRatio       decimal.Decimal   `json:"debt_ratio"`
	InvestmentRatio decimal.Decimal   `json:"investment_ratio"`
	SavingsRatio    decimal.Decimal   `json:"savings_ratio"`
	Label           string            `json:"label"`
	BaseScore       int               `json:"base_score"`
	Score           int               `json:"score"`
	Adjustments     []ScoreAdjustment `json:"adjustments,omitempty"`
}
