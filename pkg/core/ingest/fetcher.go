// Package ingest is the data-acquisition boundary: it turns a provider's raw
// quote page into a validated FinancialRecord. The valuation core never sees
// provider field names, only the normalized record shape.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"equity_valuation/pkg/models"
)

const (
	defaultBaseURL = "https://stockanalysis.com/stocks"
	requestDelay   = 500 * time.Millisecond
	envBaseURL     = "VALUATION_PROVIDER_URL"
)

// HTTPFetcher scrapes a quote-statistics page into a FinancialRecord.
// Requests are spaced by a minimum delay to stay polite with the provider;
// the valuation core downstream performs no I/O of its own.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string

	mu          sync.Mutex
	lastRequest time.Time
}

// NewHTTPFetcher builds a fetcher. The provider base URL can be overridden
// through the VALUATION_PROVIDER_URL environment variable.
func NewHTTPFetcher() *HTTPFetcher {
	base := os.Getenv(envBaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(base, "/"),
	}
}

// FetchRecord downloads and parses the statistics page for a ticker.
func (f *HTTPFetcher) FetchRecord(ctx context.Context, ticker string) (*models.FinancialRecord, error) {
	f.throttle()

	url := fmt.Sprintf("%s/%s/statistics/", f.baseURL, strings.ToLower(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d for %s", resp.StatusCode, ticker)
	}

	rec, err := ParseQuotePage(ticker, resp.Body)
	if err != nil {
		return nil, err
	}
	if err := ValidateRecord(rec); err != nil {
		return nil, fmt.Errorf("rejected malformed record for %s: %w", ticker, err)
	}
	return rec, nil
}

// throttle enforces the minimum spacing between provider requests.
func (f *HTTPFetcher) throttle() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if wait := requestDelay - time.Since(f.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	f.lastRequest = time.Now()
}

// ParseQuotePage extracts the normalized record from a statistics page. The
// page lays fundamentals out as two-cell table rows (label, value); unknown
// labels are ignored and absent values stay nil.
func ParseQuotePage(ticker string, r io.Reader) (*models.FinancialRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider page: %w", err)
	}

	rec := &models.FinancialRecord{
		Ticker:    strings.ToUpper(ticker),
		FetchTime: time.Now(),
	}

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		value, ok := parseNumber(cells.Eq(1).Text())
		if !ok {
			return
		}
		assignField(rec, label, value)
	})

	return rec, nil
}

// assignField maps a provider label onto the record. Percentage-denominated
// labels are converted to fractions.
func assignField(rec *models.FinancialRecord, label string, value float64) {
	switch strings.ToLower(label) {
	case "current price", "stock price":
		rec.CurrentPrice = &value
	case "eps (ttm)", "eps (diluted)":
		rec.EarningsPerShare = &value
	case "book value per share":
		rec.BookValuePerShare = &value
	case "total debt":
		rec.TotalDebt = &value
	case "shareholders' equity", "total equity":
		rec.TotalEquity = &value
	case "total assets":
		rec.TotalAssets = &value
	case "net income":
		rec.NetIncome = &value
	case "revenue":
		rec.Revenue = &value
	case "free cash flow":
		rec.FreeCashFlow = &value
	case "shares outstanding":
		rec.SharesOutstanding = &value
	case "current assets":
		rec.CurrentAssets = &value
	case "current liabilities":
		rec.CurrentLiabilities = &value
	case "dividend yield":
		frac := value / 100
		rec.DividendYield = &frac
	case "beta", "beta (5y)":
		rec.Beta = &value
	case "growth estimate", "eps growth forecast":
		frac := value / 100
		rec.GrowthRateEstimate = &frac
	}
}

// parseNumber normalizes a scraped cell: strips currency symbols, thousands
// separators, and percent signs, and expands K/M/B/T suffixes. "n/a" and
// empty cells report !ok rather than a defaulted zero.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "n/a", "na", "-", "--":
		return 0, false
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "T"):
		multiplier = 1e12
		s = strings.TrimSuffix(s, "T")
	case strings.HasSuffix(s, "B"):
		multiplier = 1e9
		s = strings.TrimSuffix(s, "B")
	case strings.HasSuffix(s, "M"):
		multiplier = 1e6
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		multiplier = 1e3
		s = strings.TrimSuffix(s, "K")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v * multiplier, true
}
