// Package valuation implements the three scoring methodologies: Graham
// intrinsic value, Buffett quality checklist, and Damodaran discounted cash
// flow. Each evaluator is a pure function over a record (plus derived ratios
// or market assumptions) producing an immutable Result.
package valuation

// Methodology identifiers carried on every Result.
const (
	MethodGraham  = "graham"
	MethodBuffett = "buffett"
	MethodDCF     = "damodaran_dcf"
)

// CriterionResult records a single checklist item. Evaluated is false when
// the inputs were missing or undefined: an unevaluable criterion contributes
// zero points, which is a different fact from a failed one.
type CriterionResult struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Passed    bool    `json:"passed"`
	Evaluated bool    `json:"evaluated"`
}

// Result is the outcome of one methodology for one record. Scores are on a
// 0-100 scale. The pointer fields are methodology-specific computed values;
// nil means the value was undefined for this record (missing inputs or an
// ill-defined operation, with the cause listed in Reasons).
type Result struct {
	Method   string            `json:"method"`
	Score    float64           `json:"score"`
	Label    string            `json:"label"`
	Criteria []CriterionResult `json:"criteria,omitempty"`
	Reasons  []string          `json:"reasons,omitempty"`

	GrahamNumber           *float64  `json:"graham_number,omitempty"`
	MarginOfSafety         *float64  `json:"margin_of_safety,omitempty"`
	IntrinsicValuePerShare *float64  `json:"intrinsic_value_per_share,omitempty"`
	EnterpriseValue        *float64  `json:"enterprise_value,omitempty"`
	TerminalValue          *float64  `json:"terminal_value,omitempty"`
	WACC                   *float64  `json:"wacc,omitempty"`
	CostOfEquity           *float64  `json:"cost_of_equity,omitempty"`
	ProjectedFCF           []float64 `json:"projected_fcf,omitempty"`
}

// scoreCriteria sums the weights of passed criteria. Weights per methodology
// sum to 100, so the result is already on the 0-100 scale.
func scoreCriteria(criteria []CriterionResult) float64 {
	var score float64
	for _, c := range criteria {
		if c.Evaluated && c.Passed {
			score += c.Weight
		}
	}
	return score
}

// scoreLabel buckets a 0-100 score into a coarse category for display.
func scoreLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	case score >= 20:
		return "Weak"
	default:
		return "Poor"
	}
}

// lessThan builds a criterion that passes when the value is strictly below
// the threshold. A nil value marks the criterion unevaluated.
func lessThan(name string, value *float64, threshold, weight float64) CriterionResult {
	c := CriterionResult{Name: name, Weight: weight}
	if value != nil {
		c.Evaluated = true
		c.Passed = *value < threshold
	}
	return c
}

// greaterThan is the strict-greater counterpart of lessThan.
func greaterThan(name string, value *float64, threshold, weight float64) CriterionResult {
	c := CriterionResult{Name: name, Weight: weight}
	if value != nil {
		c.Evaluated = true
		c.Passed = *value > threshold
	}
	return c
}
