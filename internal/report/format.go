package report

import (
	"fmt"
	"strings"
	"time"

	"StockSentry/internal/model"
)

func marker(class model.Classification) string {
	switch class {
	case model.Bullish:
		return "+"
	case model.Bearish:
		return "-"
	default:
		return "!"
	}
}

// Explain maps an error kind to a human-readable explanation.
func Explain(kind model.ErrorKind) string {
	switch kind {
	case model.KindNetwork:
		return "network failure reaching the provider; try again later"
	case model.KindInvalidTicker:
		return "symbol not recognized by the provider; check the ticker"
	case model.KindRateLimited:
		return "provider rate limit reached; retry after a cooldown"
	case model.KindAPIKey:
		return "API key rejected; check the configured credentials"
	case model.KindNoData:
		return "symbol recognized but no daily series is available"
	case model.KindMalformedData:
		return "provider response did not match the expected shape"
	default:
		return string(kind)
	}
}

// FormatResult renders one ticker's analysis as plain text.
func FormatResult(res *model.AnalysisResult) string {
	var b strings.Builder

	if !res.OK() {
		b.WriteString(fmt.Sprintf("%s: FAILED (%s)\n  %s\n", res.Ticker, res.Err, Explain(res.Err)))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s: %.2f on %s (%d data points)\n",
		res.Ticker, res.LatestPrice, res.LatestDate.Format("2006-01-02"), res.DataPoints))

	ind := res.Indicators
	if ind.ShortSMA.Valid {
		b.WriteString(fmt.Sprintf("  SMA%d: %.2f", ind.ShortSMAPeriod, ind.ShortSMA.Float64))
	}
	if ind.LongSMA.Valid {
		b.WriteString(fmt.Sprintf(" | SMA%d: %.2f", ind.LongSMAPeriod, ind.LongSMA.Float64))
	}
	if ind.RSI.Valid {
		b.WriteString(fmt.Sprintf(" | RSI: %.1f", ind.RSI.Float64))
	}
	if ind.ShortSMA.Valid || ind.LongSMA.Valid || ind.RSI.Valid {
		b.WriteString("\n")
	}
	if ind.Momentum.OneWeekPct.Valid {
		b.WriteString(fmt.Sprintf("  1w: %+.2f%%", ind.Momentum.OneWeekPct.Float64))
		if ind.Momentum.OneMonthPct.Valid {
			b.WriteString(fmt.Sprintf(" | 1m: %+.2f%%", ind.Momentum.OneMonthPct.Float64))
		}
		b.WriteString("\n")
	}

	for _, s := range res.Signals {
		b.WriteString(fmt.Sprintf("  [%s] %s\n", marker(s.Class), s.Text))
	}
	return b.String()
}

// FormatRun renders a full run, one block per ticker.
func FormatRun(results []model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("StockSentry run | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	for i := range results {
		b.WriteString(FormatResult(&results[i]))
		b.WriteString("\n")
	}
	return b.String()
}
