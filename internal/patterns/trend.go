package patterns

import (
	"github.com/ducanhng/crypto-advisor/internal/indicators"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// minTrendPoints is the minimum series length for a trend classification.
const minTrendPoints = 10

// ClassifyTrend orders the current price against the 7/14/30 SMAs.
// A fully stacked ladder reads as a strong trend, a partial one as a plain
// trend, anything else as sideways. Requires at least 10 points.
func ClassifyTrend(series []types.PricePoint) Trend {
	if len(series) < minTrendPoints {
		return TrendUnknown
	}

	closes := types.Closes(series)
	price := closes[len(closes)-1]
	// Periods cap at the series length so a 20-point history still yields a
	// usable ladder instead of a degraded long average pinned to the last price.
	sma7 := indicators.NewSMA(capPeriod(7, len(closes))).Calculate(closes)
	sma14 := indicators.NewSMA(capPeriod(14, len(closes))).Calculate(closes)
	sma30 := indicators.NewSMA(capPeriod(30, len(closes))).Calculate(closes)

	switch {
	case price > sma7 && sma7 > sma14 && sma14 > sma30:
		return TrendStrongBullish
	case price < sma7 && sma7 < sma14 && sma14 < sma30:
		return TrendStrongBearish
	case price > sma14 && sma14 > sma30:
		return TrendBullish
	case price < sma14 && sma14 < sma30:
		return TrendBearish
	default:
		return TrendSideways
	}
}

func capPeriod(period, available int) int {
	if period > available {
		return available
	}
	return period
}
