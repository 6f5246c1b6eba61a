package indicator

// SMA computes the simple moving average of the newest `period` closes.
// Prices are newest first. ok is false when there are fewer than
// `period` points or the period is not positive.
func SMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	sum := 0.0
	for _, p := range prices[:period] {
		sum += p
	}
	return sum / float64(period), true
}
