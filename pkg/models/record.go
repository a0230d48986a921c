package models

import (
	"time"
)

// FinancialRecord is the normalized fundamentals snapshot for one ticker at
// one point in time. It is produced by the data-acquisition layer and consumed
// by the valuation core; the core never talks to a provider directly.
//
// Numeric fields are pointers: nil means the provider had no value. Data gaps
// are expected, not exceptional, so a missing field must stay distinguishable
// from a legitimate zero all the way through scoring.
type FinancialRecord struct {
	Ticker      string `json:"ticker" validate:"required"`
	CompanyName string `json:"company_name,omitempty"`
	Sector      string `json:"sector,omitempty"`

	CurrentPrice       *float64 `json:"current_price,omitempty" validate:"omitempty,gt=0"`
	EarningsPerShare   *float64 `json:"earnings_per_share,omitempty"`
	BookValuePerShare  *float64 `json:"book_value_per_share,omitempty"`
	TotalDebt          *float64 `json:"total_debt,omitempty" validate:"omitempty,gte=0"`
	TotalEquity        *float64 `json:"total_equity,omitempty"`
	TotalAssets        *float64 `json:"total_assets,omitempty" validate:"omitempty,gte=0"`
	NetIncome          *float64 `json:"net_income,omitempty"`
	Revenue            *float64 `json:"revenue,omitempty" validate:"omitempty,gte=0"`
	FreeCashFlow       *float64 `json:"free_cash_flow,omitempty"`
	SharesOutstanding  *float64 `json:"shares_outstanding,omitempty" validate:"omitempty,gte=0"`
	CurrentAssets      *float64 `json:"current_assets,omitempty" validate:"omitempty,gte=0"`
	CurrentLiabilities *float64 `json:"current_liabilities,omitempty" validate:"omitempty,gte=0"`
	DividendYield      *float64 `json:"dividend_yield,omitempty" validate:"omitempty,gte=0"`
	Beta               *float64 `json:"beta,omitempty"`
	GrowthRateEstimate *float64 `json:"growth_rate_estimate,omitempty"`

	FetchTime time.Time `json:"fetch_time,omitempty"`
}

// Float returns a pointer to v. Convenience for building records literally.
func Float(v float64) *float64 { return &v }
