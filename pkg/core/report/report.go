// Package report serializes evaluation results for the output boundary:
// JSON and CSV for downstream tooling, Markdown/HTML summaries and terminal
// tables for people.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"equity_valuation/pkg/core/composite"
)

// WriteJSON writes the results as indented JSON.
func WriteJSON(w io.Writer, results []*composite.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

var csvHeader = []string{
	"ticker", "overall_score", "recommendation", "risk_level",
	"graham_score", "buffett_score", "dcf_score",
	"graham_number", "dcf_value_per_share",
}

// WriteCSV writes one row per result with scores and the headline computed
// values. Undefined values serialize as empty cells, preserving the gap.
func WriteCSV(w io.Writer, results []*composite.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Ticker,
			fmt.Sprintf("%.2f", r.OverallScore),
			string(r.Recommendation),
			string(r.RiskLevel),
			fmt.Sprintf("%.2f", r.Graham.Score),
			fmt.Sprintf("%.2f", r.Buffett.Score),
			fmt.Sprintf("%.2f", r.DCF.Score),
			optCell(r.Graham.GrahamNumber),
			optCell(r.DCF.IntrinsicValuePerShare),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", r.Ticker, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Markdown builds a human-readable summary of a screening run.
func Markdown(results []*composite.Result) string {
	var b strings.Builder
	b.WriteString("# Valuation Summary\n\n")
	if len(results) == 0 {
		b.WriteString("No stocks passed the screen.\n")
		return b.String()
	}
	b.WriteString("| Ticker | Score | Recommendation | Risk | Graham | Buffett | DCF |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %.1f | %s | %s | %.0f | %.0f | %.0f |\n",
			r.Ticker, r.OverallScore, r.Recommendation, r.RiskLevel,
			r.Graham.Score, r.Buffett.Score, r.DCF.Score)
	}
	b.WriteString("\n")
	for _, r := range results {
		fmt.Fprintf(&b, "## %s\n\n", r.Ticker)
		if r.Graham.GrahamNumber != nil {
			fmt.Fprintf(&b, "- Graham Number: %.2f\n", *r.Graham.GrahamNumber)
		}
		if r.Graham.MarginOfSafety != nil {
			fmt.Fprintf(&b, "- Margin of Safety: %.1f%%\n", *r.Graham.MarginOfSafety*100)
		}
		if r.DCF.IntrinsicValuePerShare != nil {
			fmt.Fprintf(&b, "- DCF Value per Share: %.2f\n", *r.DCF.IntrinsicValuePerShare)
		}
		if r.DCF.WACC != nil {
			fmt.Fprintf(&b, "- WACC: %.2f%%\n", *r.DCF.WACC*100)
		}
		for _, reason := range collectReasons(r) {
			fmt.Fprintf(&b, "- Note: %s\n", reason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteHTML renders the Markdown summary to HTML.
func WriteHTML(w io.Writer, results []*composite.Result) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(results)), &buf); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func optCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func collectReasons(r *composite.Result) []string {
	var out []string
	out = append(out, r.Graham.Reasons...)
	out = append(out, r.Buffett.Reasons...)
	out = append(out, r.DCF.Reasons...)
	return out
}
