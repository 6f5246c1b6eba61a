package model

import "github.com/guregu/null/v6"

// MACDResult holds the latest MACD line, signal line and histogram values.
type MACDResult struct {
	MACDLine   float64
	SignalLine float64
	Histogram  float64
}

// BollingerBands holds the band levels around the middle SMA.
type BollingerBands struct {
	Upper        float64
	Middle       float64
	Lower        float64
	BandwidthPct float64
}

// Momentum holds percentage price changes over trading-day offsets.
type Momentum struct {
	OneWeekPct  null.Float
	OneMonthPct null.Float
}

// IndicatorSet holds all computed technical indicators for one series.
// An invalid null.Float or a nil pointer means the series had too few
// points for that indicator; dependent signals are not emitted for it.
type IndicatorSet struct {
	ShortSMA       null.Float
	ShortSMAPeriod int
	LongSMA        null.Float
	LongSMAPeriod  int
	RSI            null.Float
	RSIPeriod      int
	MACD           *MACDResult
	Bollinger      *BollingerBands
	Momentum       Momentum
}
