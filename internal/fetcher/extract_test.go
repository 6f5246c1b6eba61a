package fetcher

import (
	"errors"
	"testing"
	"time"

	"StockSentry/internal/model"
)

func TestExtractSeries_SortsByCalendarDate(t *testing.T) {
	// Dates straddle a month boundary; string order would be wrong if the
	// year changed, so parse-then-sort is exercised across both.
	payload := `{"Time Series (Daily)": {
		"2023-12-29": {"4. close": "98.00"},
		"2024-01-02": {"4. close": "105.00"},
		"2024-01-01": {"4. close": "100.00"}
	}}`

	series, err := ExtractSeries("aapl", []byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Ticker != "AAPL" {
		t.Errorf("ticker not normalized: %q", series.Ticker)
	}
	wantDates := []string{"2024-01-02", "2024-01-01", "2023-12-29"}
	if len(series.Points) != len(wantDates) {
		t.Fatalf("expected %d points, got %d", len(wantDates), len(series.Points))
	}
	for i, want := range wantDates {
		if got := series.Points[i].Date.Format("2006-01-02"); got != want {
			t.Errorf("point %d: date %s, want %s", i, got, want)
		}
	}
	if series.Latest().Close != 105 {
		t.Errorf("latest close = %v, want 105", series.Latest().Close)
	}
}

func TestExtractSeries_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing series", `{"Meta Data": {}}`},
		{"empty series", `{"Time Series (Daily)": {}}`},
		{"non-numeric close", `{"Time Series (Daily)": {"2024-06-14": {"4. close": "n/a"}}}`},
		{"non-positive close", `{"Time Series (Daily)": {"2024-06-14": {"4. close": "0"}}}`},
		{"bad date", `{"Time Series (Daily)": {"June 14": {"4. close": "100"}}}`},
		{"not json", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractSeries("AAA", []byte(tt.payload))
			if !errors.Is(err, model.ErrMalformedData) {
				t.Errorf("expected ErrMalformedData, got %v", err)
			}
		})
	}
}

func TestExtractSeries_DatesDescendingAndUnique(t *testing.T) {
	payload := `{"Time Series (Daily)": {
		"2024-06-10": {"4. close": "100"},
		"2024-06-11": {"4. close": "101"},
		"2024-06-12": {"4. close": "102"},
		"2024-06-13": {"4. close": "103"},
		"2024-06-14": {"4. close": "104"}
	}}`
	series, err := ExtractSeries("AAA", []byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(series.Points); i++ {
		if !series.Points[i].Date.Before(series.Points[i-1].Date) {
			t.Fatalf("points not strictly descending at %d: %v then %v",
				i, series.Points[i-1].Date.Format(time.DateOnly), series.Points[i].Date.Format(time.DateOnly))
		}
	}
}
