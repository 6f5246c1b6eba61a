package indicator

import "StockSentry/internal/model"

const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// MACD computes the latest MACD line, signal line and histogram from
// newest-first prices using the 12/26/9 convention. Returns nil when
// there are too few points to form the slow EMA or to seed the signal
// EMA over the MACD line.
func MACD(prices []float64) *model.MACDResult {
	if len(prices) < macdSlowPeriod {
		return nil
	}

	closes := reversed(prices)
	fast := emaSeries(closes, macdFastPeriod)
	slow := emaSeries(closes, macdSlowPeriod)

	// MACD line wherever both EMAs are defined.
	macdLine := make([]float64, 0, len(closes)-macdSlowPeriod+1)
	for i := macdSlowPeriod - 1; i < len(closes); i++ {
		macdLine = append(macdLine, fast[i]-slow[i])
	}
	if len(macdLine) < macdSignalPeriod {
		return nil
	}

	signal := emaSeries(macdLine, macdSignalPeriod)
	last := len(macdLine) - 1

	return &model.MACDResult{
		MACDLine:   macdLine[last],
		SignalLine: signal[last],
		Histogram:  macdLine[last] - signal[last],
	}
}
