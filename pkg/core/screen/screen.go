// Package screen filters and ranks evaluated stocks against a minimum score.
package screen

import (
	"sort"

	"equity_valuation/pkg/core/composite"
)

// Screen returns the results whose overall score is at least minScore,
// ordered by descending score with ties broken by ascending ticker. The
// ordering is fully deterministic: identical inputs always produce an
// identical sequence.
func Screen(results []*composite.Result, minScore float64) []*composite.Result {
	passed := make([]*composite.Result, 0, len(results))
	for _, r := range results {
		if r != nil && r.OverallScore >= minScore {
			passed = append(passed, r)
		}
	}
	sort.SliceStable(passed, func(i, j int) bool {
		if passed[i].OverallScore != passed[j].OverallScore {
			return passed[i].OverallScore > passed[j].OverallScore
		}
		return passed[i].Ticker < passed[j].Ticker
	})
	return passed
}

// Tickers extracts just the ordered symbols from a screened sequence.
func Tickers(results []*composite.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Ticker
	}
	return out
}
