package indicator

import (
	"math"
	"testing"
	"time"

	"StockSentry/internal/model"
)

func makeSeries(closes []float64) *model.PriceSeries {
	points := make([]model.PricePoint, len(closes))
	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		points[i] = model.PricePoint{Date: day.AddDate(0, 0, -i), Close: c}
	}
	return &model.PriceSeries{Ticker: "TEST", Points: points}
}

func linearUptrend(n int) []float64 {
	// Newest first: latest price is highest.
	prices := make([]float64, n)
	for i := 0; i < n; i++ {
		prices[i] = 100 + float64(n-i)
	}
	return prices
}

func linearDowntrend(n int) []float64 {
	prices := make([]float64, n)
	for i := 0; i < n; i++ {
		prices[i] = 100 + float64(i)
	}
	return prices
}

func TestSMA_Basic(t *testing.T) {
	prices := []float64{105, 100, 98, 97, 100}
	got, ok := SMA(prices, 3)
	if !ok {
		t.Fatal("expected SMA to be defined")
	}
	want := (105.0 + 100.0 + 98.0) / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SMA(3) = %v, want %v", got, want)
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	if _, ok := SMA([]float64{1, 2}, 3); ok {
		t.Error("expected SMA undefined for 2 points, period 3")
	}
	if _, ok := SMA(nil, 1); ok {
		t.Error("expected SMA undefined for empty input")
	}
	if _, ok := SMA([]float64{1, 2, 3}, 0); ok {
		t.Error("expected SMA undefined for zero period")
	}
}

func TestSMA_ScalingProperty(t *testing.T) {
	prices := []float64{105, 100, 98, 97, 100, 103, 99}
	base, _ := SMA(prices, 5)

	scaled := make([]float64, len(prices))
	for i, p := range prices {
		scaled[i] = p * 3
	}
	got, _ := SMA(scaled, 5)
	if math.Abs(got-3*base) > 1e-9 {
		t.Errorf("SMA scaling broken: got %v, want %v", got, 3*base)
	}
}

func TestRSI_Bounds(t *testing.T) {
	prices := []float64{102, 99, 104, 101, 97, 103, 100, 98, 105, 99, 101, 104, 96, 102, 100, 103}
	rsi, ok := RSI(prices, 14)
	if !ok {
		t.Fatal("expected RSI to be defined for 16 points")
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI out of bounds: %v", rsi)
	}
}

func TestRSI_AllGains(t *testing.T) {
	rsi, ok := RSI(linearUptrend(20), 14)
	if !ok {
		t.Fatal("expected RSI to be defined")
	}
	if rsi != 100 {
		t.Errorf("all-increasing series: RSI = %v, want 100", rsi)
	}
}

func TestRSI_AllLosses(t *testing.T) {
	rsi, ok := RSI(linearDowntrend(20), 14)
	if !ok {
		t.Fatal("expected RSI to be defined")
	}
	if rsi != 0 {
		t.Errorf("all-decreasing series: RSI = %v, want 0", rsi)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	if _, ok := RSI(linearUptrend(14), 14); ok {
		t.Error("expected RSI undefined for exactly period points")
	}
}

func TestMACD_TrendSigns(t *testing.T) {
	up := MACD(linearUptrend(60))
	if up == nil {
		t.Fatal("expected MACD for 60 points")
	}
	if up.Histogram <= 0 {
		t.Errorf("uptrend histogram = %v, want > 0", up.Histogram)
	}
	if math.Abs(up.Histogram-(up.MACDLine-up.SignalLine)) > 1e-9 {
		t.Errorf("histogram %v != macd-signal %v", up.Histogram, up.MACDLine-up.SignalLine)
	}

	down := MACD(linearDowntrend(60))
	if down == nil {
		t.Fatal("expected MACD for 60 points")
	}
	if down.Histogram >= 0 {
		t.Errorf("downtrend histogram = %v, want < 0", down.Histogram)
	}
}

func TestMACD_InsufficientData(t *testing.T) {
	if got := MACD(linearUptrend(25)); got != nil {
		t.Errorf("expected nil MACD below the slow period, got %+v", got)
	}
}

func TestBollinger_Symmetry(t *testing.T) {
	prices := []float64{102, 99, 104, 101, 97, 103, 100, 98, 105, 99,
		101, 104, 96, 102, 100, 103, 98, 97, 106, 100}
	bands := Bollinger(prices, 20)
	if bands == nil {
		t.Fatal("expected bands for 20 points")
	}
	upperGap := bands.Upper - bands.Middle
	lowerGap := bands.Middle - bands.Lower
	if math.Abs(upperGap-lowerGap) > 1e-9 {
		t.Errorf("bands not symmetric: upper gap %v, lower gap %v", upperGap, lowerGap)
	}
	if bands.BandwidthPct < 0 {
		t.Errorf("negative bandwidth: %v", bands.BandwidthPct)
	}
}

func TestBollinger_FlatSeries(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100
	}
	bands := Bollinger(prices, 20)
	if bands == nil {
		t.Fatal("expected bands for flat series")
	}
	if bands.Upper != 100 || bands.Lower != 100 || bands.BandwidthPct != 0 {
		t.Errorf("flat series should collapse bands, got %+v", bands)
	}
}

func TestBollinger_InsufficientData(t *testing.T) {
	if got := Bollinger(linearUptrend(19), 20); got != nil {
		t.Errorf("expected nil bands for 19 points, got %+v", got)
	}
}

func TestMomentum(t *testing.T) {
	prices := []float64{105, 104, 103, 102, 101, 100}
	m := Momentum(prices)
	if !m.OneWeekPct.Valid {
		t.Fatal("expected 1-week momentum for 6 points")
	}
	if math.Abs(m.OneWeekPct.Float64-5.0) > 1e-9 {
		t.Errorf("1-week momentum = %v, want 5.0", m.OneWeekPct.Float64)
	}
	if m.OneMonthPct.Valid {
		t.Error("expected null 1-month momentum for 6 points")
	}
}

func TestCompute_NullPropagation(t *testing.T) {
	set := Compute(makeSeries(linearUptrend(10)), DefaultConfig())
	if set.ShortSMA.Valid || set.LongSMA.Valid {
		t.Error("expected null SMAs for 10 points")
	}
	if set.RSI.Valid {
		t.Error("expected null RSI for 10 points")
	}
	if set.MACD != nil {
		t.Error("expected nil MACD for 10 points")
	}
	if set.Bollinger != nil {
		t.Error("expected nil Bollinger for 10 points")
	}
	if !set.Momentum.OneWeekPct.Valid {
		t.Error("expected 1-week momentum for 10 points")
	}
}

func TestCompute_MACDMinimumGate(t *testing.T) {
	cfg := DefaultConfig()
	if set := Compute(makeSeries(linearUptrend(34)), cfg); set.MACD != nil {
		t.Error("expected nil MACD below the configured minimum")
	}
	if set := Compute(makeSeries(linearUptrend(35)), cfg); set.MACD == nil {
		t.Error("expected MACD at the configured minimum")
	}
}

func TestCompute_FullSeries(t *testing.T) {
	set := Compute(makeSeries(linearUptrend(120)), DefaultConfig())
	if !set.ShortSMA.Valid || !set.LongSMA.Valid || !set.RSI.Valid {
		t.Fatal("expected all scalar indicators for 120 points")
	}
	if set.MACD == nil || set.Bollinger == nil {
		t.Fatal("expected MACD and Bollinger for 120 points")
	}
	if set.ShortSMA.Float64 <= set.LongSMA.Float64 {
		t.Errorf("uptrend: short SMA %v should exceed long SMA %v",
			set.ShortSMA.Float64, set.LongSMA.Float64)
	}
}
