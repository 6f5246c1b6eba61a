package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockSentry/internal/model"
)

// AlphaVantageFetcher implements Fetcher against the Alpha Vantage daily
// time-series endpoint.
type AlphaVantageFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantageFetcher creates a fetcher with optional proxy support.
func NewAlphaVantageFetcher(baseURL, apiKey, proxyURL string) *AlphaVantageFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

func (f *AlphaVantageFetcher) FetchDailySeries(ctx context.Context, ticker string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&apikey=%s",
		f.BaseURL, url.QueryEscape(ticker), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s (%v): %w", ticker, err, model.ErrNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body for %s (%v): %w", ticker, err, model.ErrNetwork)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d: %w", ticker, resp.StatusCode, model.ErrNetwork)
	}

	if err := ClassifyPayload(body); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	return body, nil
}

// ClassifyPayload inspects a provider response body for the documented
// error markers. Precedence: invalid symbol, rate limit, api key, then
// a missing or empty time series.
func ClassifyPayload(body []byte) error {
	var probe struct {
		ErrorMessage string                     `json:"Error Message"`
		Note         string                     `json:"Note"`
		Information  string                     `json:"Information"`
		Series       map[string]json.RawMessage `json:"Time Series (Daily)"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("unparseable payload (%v): %w", err, model.ErrNoData)
	}
	switch {
	case probe.ErrorMessage != "":
		return fmt.Errorf("%s: %w", probe.ErrorMessage, model.ErrInvalidTicker)
	case probe.Note != "":
		return fmt.Errorf("%s: %w", probe.Note, model.ErrRateLimited)
	case probe.Information != "":
		return fmt.Errorf("%s: %w", probe.Information, model.ErrAPIKey)
	case len(probe.Series) == 0:
		return fmt.Errorf("time series missing or empty: %w", model.ErrNoData)
	}
	return nil
}
