// Package pipeline wires the valuation stages together: fetch a normalized
// record, derive ratios, run the three valuators, and blend the composite.
// Batch evaluation fans out across a bounded worker pool; every per-ticker
// failure stays inside that ticker's slot and never aborts the batch.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"equity_valuation/pkg/core/assumption"
	"equity_valuation/pkg/core/composite"
	"equity_valuation/pkg/core/ratio"
	"equity_valuation/pkg/core/screen"
	"equity_valuation/pkg/core/valuation"
	"equity_valuation/pkg/models"
)

// RecordFetcher retrieves the normalized fundamentals for a ticker.
// Implementations may fetch from:
// - a live provider (HTTP scrape or API)
// - a local fixture set for tests
// Rate limiting and retries belong to the implementation, not the pipeline.
type RecordFetcher interface {
	FetchRecord(ctx context.Context, ticker string) (*models.FinancialRecord, error)
}

const defaultWorkers = 4

// Orchestrator owns the configuration for a valuation run. Assumptions and
// weights are validated at construction, so evaluation never starts on a bad
// configuration.
type Orchestrator struct {
	fetcher     RecordFetcher
	assumptions assumption.MarketAssumptions
	weights     assumption.Weights
	workers     int
}

// NewOrchestrator validates the configuration and builds an orchestrator.
func NewOrchestrator(fetcher RecordFetcher, a assumption.MarketAssumptions, w assumption.Weights) (*Orchestrator, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Orchestrator{
		fetcher:     fetcher,
		assumptions: a,
		weights:     w,
		workers:     defaultWorkers,
	}, nil
}

// SetWorkers bounds the batch fan-out. Values below 1 reset the default.
func (o *Orchestrator) SetWorkers(n int) {
	if n < 1 {
		n = defaultWorkers
	}
	o.workers = n
}

// EvaluateRecord runs the full pipeline for one record: ratios, the three
// valuators (independent, order-insensitive), then the composite blend. Pure
// computation, no I/O.
func (o *Orchestrator) EvaluateRecord(rec *models.FinancialRecord) (*composite.Result, error) {
	if rec == nil {
		return nil, fmt.Errorf("record is nil")
	}
	ratios := ratio.Compute(rec)
	graham := valuation.EvaluateGraham(rec, ratios)
	buffett := valuation.EvaluateBuffett(rec, ratios, o.assumptions.MinNetProfitMargin)
	dcf := valuation.EvaluateDCF(rec, o.assumptions)
	return composite.Combine(rec, ratios, graham, buffett, dcf, o.weights)
}

// BatchResult collects a batch run. Results are sorted by ticker for
// reproducible output; fetch or evaluation failures land in Errors keyed by
// ticker.
type BatchResult struct {
	RunID   string              `json:"run_id"`
	Results []*composite.Result `json:"results"`
	Errors  map[string]error    `json:"-"`
	Elapsed time.Duration       `json:"elapsed"`
}

// RunBatch evaluates every ticker concurrently. Each ticker's pipeline is
// independent; the only synchronization is result collection.
func (o *Orchestrator) RunBatch(ctx context.Context, tickers []string) *BatchResult {
	start := time.Now()
	batch := &BatchResult{
		RunID:  uuid.NewString(),
		Errors: make(map[string]error),
	}
	fmt.Printf("Starting valuation batch %s for %d tickers...\n", batch.RunID, len(tickers))

	workers := o.workers
	if workers > len(tickers) {
		workers = len(tickers)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticker := range jobs {
				res, err := o.evaluateTicker(ctx, ticker)
				mu.Lock()
				if err != nil {
					batch.Errors[ticker] = err
				} else {
					batch.Results = append(batch.Results, res)
				}
				mu.Unlock()
			}
		}()
	}

	for _, ticker := range tickers {
		select {
		case jobs <- ticker:
		case <-ctx.Done():
			mu.Lock()
			batch.Errors[ticker] = ctx.Err()
			mu.Unlock()
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(batch.Results, func(i, j int) bool {
		return batch.Results[i].Ticker < batch.Results[j].Ticker
	})
	batch.Elapsed = time.Since(start)
	fmt.Printf("Batch %s complete: %d evaluated, %d failed in %s\n",
		batch.RunID, len(batch.Results), len(batch.Errors), batch.Elapsed.Round(time.Millisecond))
	return batch
}

func (o *Orchestrator) evaluateTicker(ctx context.Context, ticker string) (*composite.Result, error) {
	rec, err := o.fetcher.FetchRecord(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch failed for %s: %w", ticker, err)
	}
	res, err := o.EvaluateRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed for %s: %w", ticker, err)
	}
	return res, nil
}

// ScreenBatch ranks a batch against a minimum overall score.
func (o *Orchestrator) ScreenBatch(batch *BatchResult, minScore float64) []*composite.Result {
	return screen.Screen(batch.Results, minScore)
}
