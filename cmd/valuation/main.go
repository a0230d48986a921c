package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"equity_valuation/pkg/core/assumption"
	"equity_valuation/pkg/core/ingest"
	"equity_valuation/pkg/core/pipeline"
	"equity_valuation/pkg/core/report"
)

func main() {
	tickersFlag := flag.String("tickers", "", "comma-separated tickers to evaluate (required)")
	configFlag := flag.String("config", "", "path to a yaml or hjson assumptions file (optional)")
	minScoreFlag := flag.Float64("min-score", 0, "screen out results below this overall score")
	formatFlag := flag.String("format", "table", "output format: table, json, csv, html, markdown")
	workersFlag := flag.Int("workers", 4, "concurrent evaluations")
	timeoutFlag := flag.Duration("timeout", 2*time.Minute, "overall batch timeout")
	flag.Parse()

	// Load environment variables (provider URL override etc.)
	godotenv.Load()

	if *tickersFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: valuation -tickers AAPL,MSFT [-config valuation.yaml] [-min-score 60]")
		os.Exit(2)
	}
	var tickers []string
	for _, t := range strings.Split(*tickersFlag, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, strings.ToUpper(t))
		}
	}

	cfg := assumption.DefaultConfig()
	if *configFlag != "" {
		var err error
		cfg, err = assumption.LoadFile(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}
	}

	orchestrator, err := pipeline.NewOrchestrator(ingest.NewHTTPFetcher(), cfg.Assumptions, cfg.Weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	orchestrator.SetWorkers(*workersFlag)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	batch := orchestrator.RunBatch(ctx, tickers)
	for ticker, ferr := range batch.Errors {
		fmt.Fprintf(os.Stderr, "[WARNING] %s: %v\n", ticker, ferr)
	}

	screened := orchestrator.ScreenBatch(batch, *minScoreFlag)

	switch *formatFlag {
	case "table":
		report.WriteTable(os.Stdout, screened)
	case "json":
		err = report.WriteJSON(os.Stdout, screened)
	case "csv":
		err = report.WriteCSV(os.Stdout, screened)
	case "html":
		err = report.WriteHTML(os.Stdout, screened)
	case "markdown":
		fmt.Print(report.Markdown(screened))
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *formatFlag)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		os.Exit(1)
	}
}
