// Package ratio derives the dependent financial ratios every valuator reads.
// A ratio exists only when its numerator and denominator are both known and
// the denominator is non-zero; otherwise it stays nil ("undefined"), which is
// not the same thing as 0.
package ratio

import (
	"equity_valuation/pkg/models"
)

// Set holds the derived ratios for one record. Nil means the ratio could not
// be computed from the available fields. Recomputed on every call, never
// cached.
type Set struct {
	PERatio         *float64 `json:"pe_ratio,omitempty"`
	PBRatio         *float64 `json:"pb_ratio,omitempty"`
	DebtToEquity    *float64 `json:"debt_to_equity,omitempty"`
	ROE             *float64 `json:"roe,omitempty"`
	ROA             *float64 `json:"roa,omitempty"`
	CurrentRatio    *float64 `json:"current_ratio,omitempty"`
	NetProfitMargin *float64 `json:"net_profit_margin,omitempty"`
}

// Compute derives the full ratio set from raw record fields. Pure function:
// no side effects, no state. Division by zero resolves to an undefined ratio,
// never a panic or an Inf/NaN leaking downstream.
func Compute(rec *models.FinancialRecord) Set {
	if rec == nil {
		return Set{}
	}
	return Set{
		PERatio:         safeDiv(rec.CurrentPrice, rec.EarningsPerShare),
		PBRatio:         safeDiv(rec.CurrentPrice, rec.BookValuePerShare),
		DebtToEquity:    safeDiv(rec.TotalDebt, rec.TotalEquity),
		ROE:             safeDiv(rec.NetIncome, rec.TotalEquity),
		ROA:             safeDiv(rec.NetIncome, rec.TotalAssets),
		CurrentRatio:    safeDiv(rec.CurrentAssets, rec.CurrentLiabilities),
		NetProfitMargin: safeDiv(rec.NetIncome, rec.Revenue),
	}
}

func safeDiv(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}
