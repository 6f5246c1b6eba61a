package classifier

import (
	"fmt"
	"math"
	"time"

	"github.com/guregu/null/v6"

	"StockSentry/internal/model"
)

// Classify maps the latest price and indicator set to an ordered signal
// sequence. The emission order is stable: staleness, price vs short SMA,
// price vs long SMA, SMA cross, RSI, MACD, Bollinger. Signals whose
// indicator is null are replaced by an insufficient-data warning (SMAs)
// or skipped (cross, RSI, MACD, Bollinger).
func Classify(now time.Time, series *model.PriceSeries, set *model.IndicatorSet, staleAfterDays int) []model.Signal {
	var signals []model.Signal

	latest := series.Latest()
	price := latest.Close
	available := len(series.Points)

	if age := now.Sub(latest.Date); age > time.Duration(staleAfterDays)*24*time.Hour {
		signals = append(signals, model.Signal{
			Text: fmt.Sprintf("Stale data: latest close is from %s, %d days before evaluation",
				latest.Date.Format("2006-01-02"), int(age.Hours()/24)),
			Class: model.Warning,
		})
	}

	signals = append(signals, priceVsSMA(price, set.ShortSMA, set.ShortSMAPeriod, available))
	signals = append(signals, priceVsSMA(price, set.LongSMA, set.LongSMAPeriod, available))

	if set.ShortSMA.Valid && set.LongSMA.Valid {
		if set.ShortSMA.Float64 > set.LongSMA.Float64 {
			signals = append(signals, model.Signal{
				Text: fmt.Sprintf("Golden Cross: %d-day SMA above %d-day SMA",
					set.ShortSMAPeriod, set.LongSMAPeriod),
				Class: model.Bullish,
			})
		} else {
			signals = append(signals, model.Signal{
				Text: fmt.Sprintf("Death Cross: %d-day SMA at or below %d-day SMA",
					set.ShortSMAPeriod, set.LongSMAPeriod),
				Class: model.Bearish,
			})
		}
	}

	if set.RSI.Valid {
		signals = append(signals, rsiSignal(set.RSI.Float64, set.RSIPeriod))
	}

	if set.MACD != nil {
		if set.MACD.Histogram > 0 {
			signals = append(signals, model.Signal{
				Text:  fmt.Sprintf("MACD bullish: histogram %.3f above zero", set.MACD.Histogram),
				Class: model.Bullish,
			})
		} else {
			signals = append(signals, model.Signal{
				Text:  fmt.Sprintf("MACD bearish: histogram %.3f at or below zero", set.MACD.Histogram),
				Class: model.Bearish,
			})
		}
	}

	if set.Bollinger != nil {
		signals = append(signals, bollingerSignal(price, set.Bollinger))
	}

	return signals
}

func priceVsSMA(price float64, sma null.Float, period, available int) model.Signal {
	if !sma.Valid {
		return model.Signal{
			Text: fmt.Sprintf("%d-day SMA unavailable: needs %d data points, have %d",
				period, period, available),
			Class: model.Warning,
		}
	}
	deviation := (price - sma.Float64) / sma.Float64 * 100
	if price > sma.Float64 {
		return model.Signal{
			Text:  fmt.Sprintf("Price above %d-day SMA by %.2f%%", period, math.Abs(deviation)),
			Class: model.Bullish,
		}
	}
	return model.Signal{
		Text:  fmt.Sprintf("Price below %d-day SMA by %.2f%%", period, math.Abs(deviation)),
		Class: model.Bearish,
	}
}

func rsiSignal(rsi float64, period int) model.Signal {
	switch {
	case rsi > 70:
		return model.Signal{
			Text:  fmt.Sprintf("RSI(%d) %.1f: overbought", period, rsi),
			Class: model.Bearish,
		}
	case rsi < 30:
		return model.Signal{
			Text:  fmt.Sprintf("RSI(%d) %.1f: oversold", period, rsi),
			Class: model.Bullish,
		}
	default:
		return model.Signal{
			Text:  fmt.Sprintf("RSI(%d) %.1f: neutral", period, rsi),
			Class: model.Warning,
		}
	}
}

func bollingerSignal(price float64, bands *model.BollingerBands) model.Signal {
	switch {
	case price > bands.Upper:
		return model.Signal{
			Text:  fmt.Sprintf("Price %.2f above upper Bollinger band %.2f", price, bands.Upper),
			Class: model.Bearish,
		}
	case price < bands.Lower:
		return model.Signal{
			Text:  fmt.Sprintf("Price %.2f below lower Bollinger band %.2f", price, bands.Lower),
			Class: model.Bullish,
		}
	}
	width := bands.Upper - bands.Lower
	if width <= 0 {
		return model.Signal{
			Text:  "Price within Bollinger bands",
			Class: model.Warning,
		}
	}
	position := (price - bands.Lower) / width * 100
	return model.Signal{
		Text:  fmt.Sprintf("Price within Bollinger bands at %.1f%% of band width", position),
		Class: model.Warning,
	}
}
