package valuation

import (
	"fmt"
	"math"

	"equity_valuation/pkg/core/assumption"
	"equity_valuation/pkg/models"
)

// defaultBeta is assumed when the provider reports no beta for a ticker.
const defaultBeta = 1.0

// EvaluateDCF runs a Damodaran-style two-stage discounted cash flow: project
// free cash flow for the configured horizon at the growth rate, capitalize
// the terminal year with Gordon growth, discount everything at WACC, and
// score the per-share value against the current price.
//
// Mathematically undefined conditions (WACC not exceeding terminal growth,
// zero shares outstanding) yield score 0 with the condition reported, never a
// silently produced value.
func EvaluateDCF(rec *models.FinancialRecord, a assumption.MarketAssumptions) Result {
	res := Result{Method: MethodDCF, Label: scoreLabel(0)}

	if rec.FreeCashFlow == nil {
		res.Reasons = append(res.Reasons, "free cash flow missing")
		return res
	}

	// 1. Cost of capital
	beta := defaultBeta
	if rec.Beta != nil {
		beta = *rec.Beta
	}
	var debt, equity float64
	if rec.TotalDebt != nil {
		debt = *rec.TotalDebt
	}
	if rec.TotalEquity != nil {
		equity = *rec.TotalEquity
	}
	wres := CalculateWACC(WACCInput{
		Beta:              beta,
		RiskFreeRate:      a.RiskFreeRate,
		MarketRiskPremium: a.MarketRiskPremium,
		DebtSpread:        a.DebtSpread,
		TaxRate:           a.TaxRate,
		TotalDebt:         debt,
		TotalEquity:       equity,
	})
	res.WACC = &wres.WACC
	res.CostOfEquity = &wres.CostOfEquity

	// 2. Project FCF and discount at WACC
	growth := a.GrowthRate
	if rec.GrowthRateEstimate != nil {
		growth = *rec.GrowthRateEstimate
	}
	fcf := *rec.FreeCashFlow
	var pvFCF float64
	res.ProjectedFCF = make([]float64, 0, a.ProjectionYears)
	for year := 1; year <= a.ProjectionYears; year++ {
		projected := fcf * math.Pow(1+growth, float64(year))
		res.ProjectedFCF = append(res.ProjectedFCF, projected)
		pvFCF += projected / math.Pow(1+wres.WACC, float64(year))
	}

	// 3. Terminal value (Gordon growth), defined only for WACC > g
	if wres.WACC <= a.TerminalGrowthRate {
		res.Reasons = append(res.Reasons, fmt.Sprintf(
			"terminal value undefined: wacc %.4f does not exceed terminal growth %.4f",
			wres.WACC, a.TerminalGrowthRate))
		return res
	}
	finalFCF := res.ProjectedFCF[len(res.ProjectedFCF)-1]
	tv := finalFCF * (1 + a.TerminalGrowthRate) / (wres.WACC - a.TerminalGrowthRate)
	res.TerminalValue = &tv

	// 4. Enterprise and per-share value
	ev := pvFCF + tv/math.Pow(1+wres.WACC, float64(a.ProjectionYears))
	res.EnterpriseValue = &ev

	if rec.SharesOutstanding == nil || *rec.SharesOutstanding == 0 {
		res.Reasons = append(res.Reasons, "per-share value undefined: shares outstanding unavailable")
		return res
	}
	perShare := (ev - debt) / *rec.SharesOutstanding
	res.IntrinsicValuePerShare = &perShare

	// 5. Score from the DCF margin, same sign convention as margin of safety
	if rec.CurrentPrice == nil {
		res.Reasons = append(res.Reasons, "score unavailable: current price missing")
		return res
	}
	if perShare <= 0 {
		res.Reasons = append(res.Reasons, "non-positive intrinsic value per share")
		return res
	}
	margin := (perShare - *rec.CurrentPrice) / perShare
	res.MarginOfSafety = &margin
	res.Score = dcfScore(margin)
	res.Label = scoreLabel(res.Score)
	return res
}

// dcfScore maps the DCF margin onto 0-100: a margin of -0.5 or worse is 0,
// fair value is 50, a margin of +0.5 or better is 100.
func dcfScore(margin float64) float64 {
	score := (margin + 0.5) * 100
	return math.Max(0, math.Min(100, score))
}
