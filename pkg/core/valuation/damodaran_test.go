package valuation

import (
	"math"
	"strings"
	"testing"

	"equity_valuation/pkg/core/assumption"
	"equity_valuation/pkg/models"
)

func TestWACCZeroDebtReducesToCostOfEquity(t *testing.T) {
	in := WACCInput{
		Beta:              1.2,
		RiskFreeRate:      0.05,
		MarketRiskPremium: 0.06,
		DebtSpread:        0.02,
		TaxRate:           0.21,
		TotalDebt:         0,
		TotalEquity:       500,
	}
	res := CalculateWACC(in)

	ke := 0.05 + 1.2*0.06
	if res.WACC != ke {
		t.Errorf("zero debt: WACC must equal cost of equity exactly, got %f want %f", res.WACC, ke)
	}
	if res.WeightDebt != 0 {
		t.Errorf("expected debt weight 0, got %f", res.WeightDebt)
	}
}

func TestWACCBlendsCapitalStructure(t *testing.T) {
	in := WACCInput{
		Beta:              1.0,
		RiskFreeRate:      0.05,
		MarketRiskPremium: 0.06,
		DebtSpread:        0.02,
		TaxRate:           0.21,
		TotalDebt:         100,
		TotalEquity:       300,
	}
	res := CalculateWACC(in)

	// Ke = 0.11, Kd = 0.07*0.79 = 0.0553, Wd = 0.25, We = 0.75
	expected := 0.11*0.75 + 0.07*(1-0.21)*0.25
	if math.Abs(res.WACC-expected) > 1e-9 {
		t.Errorf("expected WACC %f, got %f", expected, res.WACC)
	}
}

func TestDCFScenario(t *testing.T) {
	a := assumption.DefaultMarketAssumptions()
	rec := &models.FinancialRecord{
		Ticker:            "DCF",
		CurrentPrice:      models.Float(50),
		FreeCashFlow:      models.Float(100),
		SharesOutstanding: models.Float(10),
		TotalDebt:         models.Float(0),
		TotalEquity:       models.Float(1000),
		Beta:              models.Float(1.0),
	}
	res := EvaluateDCF(rec, a)

	// All-equity firm: WACC = Ke = 0.05 + 1.0*0.06 = 0.11.
	if res.WACC == nil || *res.WACC != 0.11 {
		t.Fatalf("expected WACC 0.11, got %v", res.WACC)
	}

	// Recompute the projection independently.
	wacc := 0.11
	var pv float64
	fcf := 100.0
	for year := 1; year <= a.ProjectionYears; year++ {
		f := fcf * math.Pow(1+a.GrowthRate, float64(year))
		pv += f / math.Pow(1+wacc, float64(year))
	}
	finalFCF := fcf * math.Pow(1+a.GrowthRate, float64(a.ProjectionYears))
	tv := finalFCF * (1 + a.TerminalGrowthRate) / (wacc - a.TerminalGrowthRate)
	ev := pv + tv/math.Pow(1+wacc, float64(a.ProjectionYears))
	perShare := ev / 10.0

	if res.IntrinsicValuePerShare == nil {
		t.Fatal("expected per-share value to be defined")
	}
	if math.Abs(*res.IntrinsicValuePerShare-perShare) > 1e-6 {
		t.Errorf("expected per-share %f, got %f", perShare, *res.IntrinsicValuePerShare)
	}
	if len(res.ProjectedFCF) != a.ProjectionYears {
		t.Errorf("expected %d projected years, got %d", a.ProjectionYears, len(res.ProjectedFCF))
	}

	margin := (perShare - 50) / perShare
	want := math.Max(0, math.Min(100, (margin+0.5)*100))
	if math.Abs(res.Score-want) > 1e-6 {
		t.Errorf("expected score %f, got %f", want, res.Score)
	}
}

func TestDCFTerminalGrowthGuard(t *testing.T) {
	// WACC <= terminal growth is mathematically undefined: reported, not
	// silently produced.
	a := assumption.DefaultMarketAssumptions()
	a.TerminalGrowthRate = 0.20
	rec := &models.FinancialRecord{
		Ticker:            "GUARD",
		CurrentPrice:      models.Float(50),
		FreeCashFlow:      models.Float(100),
		SharesOutstanding: models.Float(10),
		Beta:              models.Float(1.0),
	}
	res := EvaluateDCF(rec, a)

	if res.TerminalValue != nil {
		t.Error("terminal value must be undefined when WACC <= terminal growth")
	}
	if res.Score != 0 {
		t.Errorf("expected score 0, got %f", res.Score)
	}
	found := false
	for _, r := range res.Reasons {
		if strings.Contains(r, "terminal value undefined") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a terminal-value reason, got %v", res.Reasons)
	}
}

func TestDCFZeroSharesGuard(t *testing.T) {
	a := assumption.DefaultMarketAssumptions()
	rec := &models.FinancialRecord{
		Ticker:            "NOSH",
		CurrentPrice:      models.Float(50),
		FreeCashFlow:      models.Float(100),
		SharesOutstanding: models.Float(0),
	}
	res := EvaluateDCF(rec, a)

	if res.IntrinsicValuePerShare != nil {
		t.Error("per-share value must be undefined for zero shares outstanding")
	}
	if res.Score != 0 {
		t.Errorf("expected score 0, got %f", res.Score)
	}
}

func TestDCFMissingFreeCashFlow(t *testing.T) {
	res := EvaluateDCF(&models.FinancialRecord{Ticker: "NOFCF"}, assumption.DefaultMarketAssumptions())
	if res.Score != 0 || len(res.Reasons) == 0 {
		t.Error("missing free cash flow must score 0 with a reason")
	}
}

func TestDCFGrowthOverrideFromRecord(t *testing.T) {
	a := assumption.DefaultMarketAssumptions()
	base := &models.FinancialRecord{
		Ticker:            "GRW",
		CurrentPrice:      models.Float(50),
		FreeCashFlow:      models.Float(100),
		SharesOutstanding: models.Float(10),
		Beta:              models.Float(1.0),
	}
	override := *base
	override.GrowthRateEstimate = models.Float(0.09)

	lo := EvaluateDCF(base, a)
	hi := EvaluateDCF(&override, a)
	if lo.IntrinsicValuePerShare == nil || hi.IntrinsicValuePerShare == nil {
		t.Fatal("expected both per-share values defined")
	}
	if *hi.IntrinsicValuePerShare <= *lo.IntrinsicValuePerShare {
		t.Error("higher growth estimate must raise the intrinsic value")
	}
}
