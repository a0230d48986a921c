package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"equity_valuation/pkg/core/composite"
)

// WriteTable renders the results as a terminal table.
func WriteTable(w io.Writer, results []*composite.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(table.Row{"TICKER", "SCORE", "RECOMMENDATION", "RISK", "GRAHAM", "BUFFETT", "DCF"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Ticker,
			formatScore(r.OverallScore),
			string(r.Recommendation),
			string(r.RiskLevel),
			formatScore(r.Graham.Score),
			formatScore(r.Buffett.Score),
			formatScore(r.DCF.Score),
		})
	}
	tw.Render()
}

func formatScore(s float64) string {
	return fmt.Sprintf("%.1f", s)
}
