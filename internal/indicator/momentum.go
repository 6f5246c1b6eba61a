package indicator

import (
	"github.com/guregu/null/v6"

	"StockSentry/internal/model"
)

// Momentum offsets into the newest-first series, in trading days.
const (
	oneWeekOffset  = 5
	oneMonthOffset = 21
)

// Momentum computes the 1-week and 1-month percentage price changes.
// Each horizon is null when the series is too short or the reference
// price is zero.
func Momentum(prices []float64) model.Momentum {
	return model.Momentum{
		OneWeekPct:  pctChange(prices, oneWeekOffset),
		OneMonthPct: pctChange(prices, oneMonthOffset),
	}
}

func pctChange(prices []float64, offset int) null.Float {
	if len(prices) <= offset {
		return null.Float{}
	}
	ref := prices[offset]
	if ref == 0 {
		return null.Float{}
	}
	return null.FloatFrom((prices[0] - ref) / ref * 100)
}
