// Package composite blends the three methodology scores into a single
// recommendation and risk tier.
package composite

import (
	"equity_valuation/pkg/core/assumption"
	"equity_valuation/pkg/core/ratio"
	"equity_valuation/pkg/core/valuation"
	"equity_valuation/pkg/models"
)

// Recommendation buckets for the overall score.
type Recommendation string

const (
	StrongBuy  Recommendation = "Strong Buy"
	Buy        Recommendation = "Buy"
	Hold       Recommendation = "Hold"
	Sell       Recommendation = "Sell"
	StrongSell Recommendation = "Strong Sell"
)

// RiskLevel is a coarse volatility/leverage tier.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Result is the full evaluation for one ticker: the weighted overall score,
// its recommendation and risk tier, and the three constituent methodology
// results. Constructed fresh per evaluation and never mutated afterwards.
type Result struct {
	Ticker         string             `json:"ticker"`
	OverallScore   float64            `json:"overall_score"`
	Recommendation Recommendation     `json:"recommendation"`
	RiskLevel      RiskLevel          `json:"risk_level"`
	Graham         valuation.Result   `json:"graham"`
	Buffett        valuation.Result   `json:"buffett"`
	DCF            valuation.Result   `json:"dcf"`
	Ratios         ratio.Set          `json:"ratios"`
	Weights        assumption.Weights `json:"weights"`
}

// Combine computes the weighted overall score and derives recommendation and
// risk level. The weighted sum is order-independent; the weights are
// re-validated here so a caller bypassing the configuration constructors
// still cannot produce a silently skewed blend.
func Combine(rec *models.FinancialRecord, ratios ratio.Set,
	graham, buffett, dcf valuation.Result, w assumption.Weights) (*Result, error) {

	if err := w.Validate(); err != nil {
		return nil, err
	}

	overall := w.Graham*graham.Score + w.Buffett*buffett.Score + w.DCF*dcf.Score

	return &Result{
		Ticker:         rec.Ticker,
		OverallScore:   overall,
		Recommendation: recommendationFor(overall),
		RiskLevel:      riskFor(rec.Beta, ratios.DebtToEquity),
		Graham:         graham,
		Buffett:        buffett,
		DCF:            dcf,
		Ratios:         ratios,
		Weights:        w,
	}, nil
}

// recommendationFor maps a 0-100 overall score onto the fixed buckets,
// inclusive at each lower bound.
func recommendationFor(score float64) Recommendation {
	switch {
	case score >= 80:
		return StrongBuy
	case score >= 65:
		return Buy
	case score >= 45:
		return Hold
	case score >= 25:
		return Sell
	default:
		return StrongSell
	}
}

// riskFor tiers risk from beta and leverage jointly. Either signal alone can
// push the tier to High; Low requires both to be known and comfortable, so a
// record with gaps never looks artificially safe.
func riskFor(beta, debtToEquity *float64) RiskLevel {
	if (beta != nil && *beta > 1.5) || (debtToEquity != nil && *debtToEquity > 1.0) {
		return RiskHigh
	}
	if beta != nil && debtToEquity != nil && *beta < 0.8 && *debtToEquity < 0.3 {
		return RiskLow
	}
	return RiskMedium
}
