package fetcher

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockSentry/internal/model"
)

const dateLayout = "2006-01-02"

// ExtractSeries parses a raw provider payload into a PriceSeries,
// sorted newest first by calendar date. Any shape violation (missing
// series, bad date, non-numeric or non-positive close) fails with
// ErrMalformedData rather than being coerced.
func ExtractSeries(ticker string, payload []byte) (*model.PriceSeries, error) {
	var doc struct {
		Series map[string]struct {
			Close string `json:"4. close"`
		} `json:"Time Series (Daily)"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode payload (%v): %w", err, model.ErrMalformedData)
	}
	if len(doc.Series) == 0 {
		return nil, fmt.Errorf("time series missing or empty: %w", model.ErrMalformedData)
	}

	points := make([]model.PricePoint, 0, len(doc.Series))
	for dateStr, rec := range doc.Series {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", dateStr, model.ErrMalformedData)
		}
		closePrice, err := strconv.ParseFloat(rec.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("bad close %q for %s: %w", rec.Close, dateStr, model.ErrMalformedData)
		}
		if closePrice <= 0 {
			return nil, fmt.Errorf("non-positive close %v for %s: %w", closePrice, dateStr, model.ErrMalformedData)
		}
		points = append(points, model.PricePoint{Date: date, Close: closePrice})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.After(points[j].Date) })

	return &model.PriceSeries{
		Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
		Points: points,
	}, nil
}
