package fetcher

import "context"

// Fetcher retrieves the raw daily-series payload for one ticker.
type Fetcher interface {
	FetchDailySeries(ctx context.Context, ticker string) ([]byte, error)
	Name() string
}
