package model

import "time"

// Classification is the qualitative reading of a single signal.
type Classification string

const (
	Bullish Classification = "bullish"
	Bearish Classification = "bearish"
	Warning Classification = "warning"
)

// Signal is one human-readable finding about a ticker.
type Signal struct {
	Text  string
	Class Classification
}

// AnalysisResult is the per-ticker output of one run.
// Exactly one of Indicators / Err is set.
type AnalysisResult struct {
	Ticker      string
	LatestDate  time.Time
	LatestPrice float64
	DataPoints  int
	Indicators  *IndicatorSet
	Signals     []Signal
	Err         ErrorKind
}

// OK reports whether the analysis succeeded.
func (r *AnalysisResult) OK() bool {
	return r.Err == KindNone
}
