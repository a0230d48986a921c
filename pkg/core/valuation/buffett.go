package valuation

import (
	"equity_valuation/pkg/core/ratio"
	"equity_valuation/pkg/models"
)

// Buffett criterion weights, summing to 100.
const buffettWeight = 20.0

// EvaluateBuffett scores a record against a Buffett-style quality checklist:
// high returns on equity and assets, low leverage, comfortable liquidity, and
// a durable profit margin. minNetMargin is the configurable margin threshold
// (fraction, default 0.10). An undefined ratio leaves its criterion
// unevaluated and worth zero points.
func EvaluateBuffett(rec *models.FinancialRecord, ratios ratio.Set, minNetMargin float64) Result {
	res := Result{Method: MethodBuffett}

	res.Criteria = []CriterionResult{
		greaterThan("roe_above_15", ratios.ROE, 0.15, buffettWeight),
		greaterThan("roa_above_10", ratios.ROA, 0.10, buffettWeight),
		lessThan("debt_to_equity_under_0_5", ratios.DebtToEquity, 0.5, buffettWeight),
		greaterThan("current_ratio_above_1_5", ratios.CurrentRatio, 1.5, buffettWeight),
		greaterThan("net_margin_above_minimum", ratios.NetProfitMargin, minNetMargin, buffettWeight),
	}

	for _, c := range res.Criteria {
		if !c.Evaluated {
			res.Reasons = append(res.Reasons, c.Name+" not evaluable: insufficient data")
		}
	}

	res.Score = scoreCriteria(res.Criteria)
	res.Label = scoreLabel(res.Score)
	return res
}
