package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"equity_valuation/pkg/core/composite"
	"equity_valuation/pkg/core/valuation"
)

func sampleResults() []*composite.Result {
	gn := 47.43
	dcf := 133.70
	return []*composite.Result{
		{
			Ticker:         "AAA",
			OverallScore:   82,
			Recommendation: composite.StrongBuy,
			RiskLevel:      composite.RiskLow,
			Graham:         valuation.Result{Method: valuation.MethodGraham, Score: 75, GrahamNumber: &gn},
			Buffett:        valuation.Result{Method: valuation.MethodBuffett, Score: 80},
			DCF:            valuation.Result{Method: valuation.MethodDCF, Score: 95, IntrinsicValuePerShare: &dcf},
		},
		{
			Ticker:         "BBB",
			OverallScore:   30,
			Recommendation: composite.Sell,
			RiskLevel:      composite.RiskHigh,
			Graham:         valuation.Result{Method: valuation.MethodGraham, Score: 25, Reasons: []string{"not applicable: non-positive earnings/book value"}},
			Buffett:        valuation.Result{Method: valuation.MethodBuffett, Score: 40},
			DCF:            valuation.Result{Method: valuation.MethodDCF, Score: 20},
		},
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []*composite.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Ticker != "AAA" {
		t.Errorf("unexpected decoded content: %+v", decoded)
	}
	if decoded[0].Recommendation != composite.StrongBuy {
		t.Errorf("expected Strong Buy, got %s", decoded[0].Recommendation)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ticker" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "AAA" || rows[1][2] != "Strong Buy" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	// Undefined Graham Number serializes as an empty cell, not "0".
	if rows[2][7] != "" {
		t.Errorf("expected empty graham_number cell, got %q", rows[2][7])
	}
}

func TestMarkdownAndHTML(t *testing.T) {
	md := Markdown(sampleResults())
	if !strings.Contains(md, "| AAA | 82.0 | Strong Buy |") {
		t.Errorf("markdown table row missing:\n%s", md)
	}
	if !strings.Contains(md, "Graham Number: 47.43") {
		t.Error("expected Graham Number detail in markdown")
	}
	if !strings.Contains(md, "not applicable: non-positive earnings/book value") {
		t.Error("expected methodology reasons to surface in the report")
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Valuation Summary") {
		t.Errorf("expected rendered heading, got:\n%s", html)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	md := Markdown(nil)
	if !strings.Contains(md, "No stocks passed the screen.") {
		t.Errorf("unexpected empty-report content:\n%s", md)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResults())
	out := buf.String()
	if !strings.Contains(out, "AAA") || !strings.Contains(out, "Strong Buy") {
		t.Errorf("table output missing expected cells:\n%s", out)
	}
}
