package valuation

// WACCInput parameters for calculating the cost of capital. TotalDebt and
// TotalEquity set the capital-structure weights; a zero-debt firm collapses
// to the pure cost of equity.
type WACCInput struct {
	Beta              float64
	RiskFreeRate      float64
	MarketRiskPremium float64
	DebtSpread        float64
	TaxRate           float64
	TotalDebt         float64
	TotalEquity       float64
}

// WACCResult holds the calculated rates.
type WACCResult struct {
	CostOfEquity float64
	CostOfDebt   float64 // after-tax
	WACC         float64
	WeightDebt   float64
	WeightEquity float64
}

// CalculateWACC computes the Weighted Average Cost of Capital using CAPM.
func CalculateWACC(in WACCInput) WACCResult {
	// 1. Cost of Equity (CAPM)
	// Ke = Rf + Beta * ERP
	ke := in.RiskFreeRate + in.Beta*in.MarketRiskPremium

	// 2. Cost of Debt (after-tax)
	// Kd = (Rf + spread) * (1 - t)
	kd := (in.RiskFreeRate + in.DebtSpread) * (1 - in.TaxRate)

	// 3. Weights from the capital structure. With no debt the firm is
	// all-equity and WACC reduces exactly to Ke.
	wd := 0.0
	we := 1.0
	if total := in.TotalDebt + in.TotalEquity; in.TotalDebt > 0 && total > 0 {
		wd = in.TotalDebt / total
		we = in.TotalEquity / total
	}

	// 4. WACC
	wacc := ke*we + kd*wd

	return WACCResult{
		CostOfEquity: ke,
		CostOfDebt:   kd,
		WACC:         wacc,
		WeightDebt:   wd,
		WeightEquity: we,
	}
}
