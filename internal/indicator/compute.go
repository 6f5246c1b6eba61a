package indicator

import (
	"github.com/guregu/null/v6"

	"StockSentry/internal/model"
)

// Config holds the indicator periods. The MACD minimum and the band
// conventions are strategy policy, not hard invariants.
type Config struct {
	ShortSMAPeriod  int
	LongSMAPeriod   int
	RSIPeriod       int
	BollingerPeriod int
	MACDMinPoints   int
}

// DefaultConfig returns the conventional periods: 50/100-day SMAs,
// RSI(14), Bollinger(20), MACD needing 35 points.
func DefaultConfig() Config {
	return Config{
		ShortSMAPeriod:  50,
		LongSMAPeriod:   100,
		RSIPeriod:       14,
		BollingerPeriod: 20,
		MACDMinPoints:   35,
	}
}

// Compute derives the full indicator set from a price series. Every
// indicator whose data requirement is not met stays null; nothing is
// ever substituted with zero.
func Compute(series *model.PriceSeries, cfg Config) *model.IndicatorSet {
	prices := series.Closes()

	set := &model.IndicatorSet{
		ShortSMAPeriod: cfg.ShortSMAPeriod,
		LongSMAPeriod:  cfg.LongSMAPeriod,
		RSIPeriod:      cfg.RSIPeriod,
	}

	if v, ok := SMA(prices, cfg.ShortSMAPeriod); ok {
		set.ShortSMA = null.FloatFrom(v)
	}
	if v, ok := SMA(prices, cfg.LongSMAPeriod); ok {
		set.LongSMA = null.FloatFrom(v)
	}
	if v, ok := RSI(prices, cfg.RSIPeriod); ok {
		set.RSI = null.FloatFrom(v)
	}
	if len(prices) >= cfg.MACDMinPoints {
		set.MACD = MACD(prices)
	}
	set.Bollinger = Bollinger(prices, cfg.BollingerPeriod)
	set.Momentum = Momentum(prices)

	return set
}
