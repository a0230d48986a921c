package valuation

import (
	"math"

	"equity_valuation/pkg/core/ratio"
	"equity_valuation/pkg/models"
)

// Graham criterion weights, summing to 100.
const (
	grahamWeightPE           = 25.0
	grahamWeightPB           = 25.0
	grahamWeightDebtToEquity = 25.0
	grahamWeightMargin       = 25.0
)

// EvaluateGraham scores a record against Benjamin Graham's value checklist.
//
// Graham Number = sqrt(22.5 * EPS * book value per share), defined only for
// strictly positive operands. When EPS or book value is known and non-positive
// the square root is ill-defined and the whole methodology is not applicable:
// the result carries score 0 and the reason. When the operands are merely
// missing, the remaining ratio criteria still score individually.
func EvaluateGraham(rec *models.FinancialRecord, ratios ratio.Set) Result {
	res := Result{Method: MethodGraham}

	eps := rec.EarningsPerShare
	bvps := rec.BookValuePerShare

	if (eps != nil && *eps <= 0) || (bvps != nil && *bvps <= 0) {
		res.Reasons = append(res.Reasons, "not applicable: non-positive earnings/book value")
		res.Label = scoreLabel(0)
		return res
	}

	if eps != nil && bvps != nil {
		gn := math.Sqrt(22.5 * *eps * *bvps)
		res.GrahamNumber = &gn
		if rec.CurrentPrice != nil {
			mos := (gn - *rec.CurrentPrice) / gn
			res.MarginOfSafety = &mos
		} else {
			res.Reasons = append(res.Reasons, "margin of safety undefined: current price missing")
		}
	} else {
		res.Reasons = append(res.Reasons, "graham number undefined: earnings or book value missing")
	}

	res.Criteria = []CriterionResult{
		lessThan("pe_ratio_under_15", ratios.PERatio, 15, grahamWeightPE),
		lessThan("price_to_book_under_1_5", ratios.PBRatio, 1.5, grahamWeightPB),
		lessThan("debt_to_equity_under_0_5", ratios.DebtToEquity, 0.5, grahamWeightDebtToEquity),
		greaterThan("margin_of_safety_positive", res.MarginOfSafety, 0, grahamWeightMargin),
	}
	res.Score = scoreCriteria(res.Criteria)
	res.Label = scoreLabel(res.Score)
	return res
}
