package analyzer

import (
	"context"
	"log"
	"strings"
	"time"

	"StockSentry/internal/classifier"
	"StockSentry/internal/fetcher"
	"StockSentry/internal/indicator"
	"StockSentry/internal/model"
)

// Client abstracts the cached, rate-limited provider fetch.
type Client interface {
	Fetch(ctx context.Context, ticker string) ([]byte, error)
}

// Analyzer sequences fetch, extraction, indicator computation and
// classification across tickers. Tickers are processed strictly one at
// a time; the rate limit is global, not per ticker.
type Analyzer struct {
	client         Client
	indicators     indicator.Config
	staleAfterDays int

	now func() time.Time
}

func New(client Client, indicators indicator.Config, staleAfterDays int) *Analyzer {
	return &Analyzer{
		client:         client,
		indicators:     indicators,
		staleAfterDays: staleAfterDays,
		now:            time.Now,
	}
}

// Run analyzes each ticker in order and returns one result per input
// ticker in the same order. A ticker's failure is converted into a
// result with Err set; it never aborts the run.
func (a *Analyzer) Run(ctx context.Context, tickers []string) []model.AnalysisResult {
	results := make([]model.AnalysisResult, 0, len(tickers))
	for _, t := range tickers {
		res := a.analyzeOne(ctx, t)
		if res.OK() {
			log.Printf("[INFO] analyzed %s: %d points, %d signals", res.Ticker, res.DataPoints, len(res.Signals))
		} else {
			log.Printf("[WARN] analyze %s failed: %s", res.Ticker, res.Err)
		}
		results = append(results, res)
	}
	return results
}

func (a *Analyzer) analyzeOne(ctx context.Context, ticker string) model.AnalysisResult {
	res := model.AnalysisResult{Ticker: strings.ToUpper(strings.TrimSpace(ticker))}

	payload, err := a.client.Fetch(ctx, res.Ticker)
	if err != nil {
		res.Err = model.KindOf(err)
		return res
	}

	series, err := fetcher.ExtractSeries(res.Ticker, payload)
	if err != nil {
		res.Err = model.KindOf(err)
		return res
	}

	latest := series.Latest()
	res.LatestDate = latest.Date
	res.LatestPrice = latest.Close
	res.DataPoints = len(series.Points)

	res.Indicators = indicator.Compute(series, a.indicators)
	res.Signals = classifier.Classify(a.now(), series, res.Indicators, a.staleAfterDays)
	return res
}
