package indicator

// emaSeries computes an EMA chain over oldest-first prices. The result
// is aligned to the input; entries before index period-1 are undefined
// (left zero). The seed at period-1 is the simple mean of the first
// `period` values, then ema[i] = price[i]*k + ema[i-1]*(1-k) with
// k = 2/(period+1).
func emaSeries(oldestFirst []float64, period int) []float64 {
	if period <= 0 || len(oldestFirst) < period {
		return nil
	}

	ema := make([]float64, len(oldestFirst))
	k := 2.0 / float64(period+1)

	seed := 0.0
	for _, p := range oldestFirst[:period] {
		seed += p
	}
	ema[period-1] = seed / float64(period)

	for i := period; i < len(oldestFirst); i++ {
		ema[i] = oldestFirst[i]*k + ema[i-1]*(1-k)
	}
	return ema
}

// reversed returns a copy of prices in the opposite order. The engine
// receives newest-first series and the EMA recurrences run oldest first.
func reversed(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i, p := range prices {
		out[len(prices)-1-i] = p
	}
	return out
}
