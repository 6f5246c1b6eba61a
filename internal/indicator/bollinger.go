package indicator

import (
	"math"

	"StockSentry/internal/model"
)

// Bollinger computes bands at ±2 population standard deviations around
// the period SMA of the newest `period` closes. Returns nil with fewer
// than `period` points or a zero middle band (bandwidth undefined).
func Bollinger(prices []float64, period int) *model.BollingerBands {
	middle, ok := SMA(prices, period)
	if !ok || middle == 0 {
		return nil
	}

	variance := 0.0
	for _, p := range prices[:period] {
		diff := p - middle
		variance += diff * diff
	}
	stdDev := math.Sqrt(variance / float64(period))

	return &model.BollingerBands{
		Upper:        middle + 2*stdDev,
		Middle:       middle,
		Lower:        middle - 2*stdDev,
		BandwidthPct: 4 * stdDev / middle * 100,
	}
}
