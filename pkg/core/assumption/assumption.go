// Package assumption defines the immutable configuration objects shared by
// the valuators: market assumptions for the DCF/CAPM math and the composite
// methodology weights. Configuration is validated when built, before any
// record is evaluated; a bad assumption set is a programmer error and fails
// fast rather than polluting per-ticker results.
package assumption

import (
	"fmt"
	"math"
)

// weightTolerance is the floating slack allowed when checking that the
// composite weights sum to 1.0.
const weightTolerance = 1e-9

// ConfigurationError reports an invalid assumption or weight set. It always
// surfaces before batch evaluation starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// MarketAssumptions carries the market-level inputs for a valuation run.
// Values are fractions, not percentages (0.05 = 5%). The struct is passed by
// value and never mutated after construction, so concurrent batches with
// differing assumptions are safe.
type MarketAssumptions struct {
	RiskFreeRate       float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	MarketRiskPremium  float64 `json:"market_risk_premium" yaml:"market_risk_premium"`
	GrowthRate         float64 `json:"growth_rate" yaml:"growth_rate"`
	TerminalGrowthRate float64 `json:"terminal_growth_rate" yaml:"terminal_growth_rate"`
	ProjectionYears    int     `json:"projection_years" yaml:"projection_years"`
	TaxRate            float64 `json:"tax_rate" yaml:"tax_rate"`
	// DebtSpread is added to the risk-free rate to estimate the pre-tax cost
	// of debt when no issuer-specific rate is available.
	DebtSpread float64 `json:"debt_spread" yaml:"debt_spread"`
	// MinNetProfitMargin is the quality-checklist threshold for net margin.
	MinNetProfitMargin float64 `json:"min_net_profit_margin" yaml:"min_net_profit_margin"`
}

// DefaultMarketAssumptions returns the documented defaults: 5% risk-free,
// 6% equity risk premium, 5% growth, 2.5% terminal growth, 5-year horizon,
// 21% tax rate, 2% credit spread, 10% minimum net margin.
func DefaultMarketAssumptions() MarketAssumptions {
	return MarketAssumptions{
		RiskFreeRate:       0.05,
		MarketRiskPremium:  0.06,
		GrowthRate:         0.05,
		TerminalGrowthRate: 0.025,
		ProjectionYears:    5,
		TaxRate:            0.21,
		DebtSpread:         0.02,
		MinNetProfitMargin: 0.10,
	}
}

// Validate checks every assumption for a sane range.
func (a MarketAssumptions) Validate() error {
	if a.RiskFreeRate < 0 {
		return &ConfigurationError{Field: "risk_free_rate", Reason: "must not be negative"}
	}
	if a.MarketRiskPremium < 0 {
		return &ConfigurationError{Field: "market_risk_premium", Reason: "must not be negative"}
	}
	if a.GrowthRate <= -1 {
		return &ConfigurationError{Field: "growth_rate", Reason: "must be greater than -100%"}
	}
	if a.TerminalGrowthRate < 0 || a.TerminalGrowthRate >= 1 {
		return &ConfigurationError{Field: "terminal_growth_rate", Reason: "must be in [0, 1)"}
	}
	if a.ProjectionYears < 1 {
		return &ConfigurationError{Field: "projection_years", Reason: "must be at least 1"}
	}
	if a.TaxRate < 0 || a.TaxRate >= 1 {
		return &ConfigurationError{Field: "tax_rate", Reason: "must be in [0, 1)"}
	}
	if a.DebtSpread < 0 {
		return &ConfigurationError{Field: "debt_spread", Reason: "must not be negative"}
	}
	if a.MinNetProfitMargin < 0 || a.MinNetProfitMargin >= 1 {
		return &ConfigurationError{Field: "min_net_profit_margin", Reason: "must be in [0, 1)"}
	}
	return nil
}

// Weights are the composite blend across the three methodologies. They must
// sum to 1.0 within floating tolerance.
type Weights struct {
	Graham  float64 `json:"graham" yaml:"graham"`
	Buffett float64 `json:"buffett" yaml:"buffett"`
	DCF     float64 `json:"dcf" yaml:"dcf"`
}

// DefaultWeights returns the standard blend: 40% Graham, 35% Buffett, 25% DCF.
func DefaultWeights() Weights {
	return Weights{Graham: 0.40, Buffett: 0.35, DCF: 0.25}
}

// Validate rejects negative weights and any set not summing to 1.0.
func (w Weights) Validate() error {
	if w.Graham < 0 || w.Buffett < 0 || w.DCF < 0 {
		return &ConfigurationError{Field: "weights", Reason: "weights must not be negative"}
	}
	sum := w.Graham + w.Buffett + w.DCF
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigurationError{
			Field:  "weights",
			Reason: fmt.Sprintf("must sum to 1.0, got %g", sum),
		}
	}
	return nil
}
