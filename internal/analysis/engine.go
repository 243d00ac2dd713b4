package analysis

import (
	advisorerrors "github.com/ducanhng/crypto-advisor/internal/errors"
	"github.com/ducanhng/crypto-advisor/internal/indicators"
	"github.com/ducanhng/crypto-advisor/internal/patterns"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// Default indicator periods. These mirror the common charting conventions and
// are fixed rather than configurable: scorer weights below assume them.
const (
	rsiPeriod     = 14
	fastRSIPeriod = 7
	macdFast      = 12
	macdSlow      = 26
	macdSignal    = 9
	bbPeriod      = 20
	bbStdDev      = 2.0
	stochPeriod   = 14
	stochSmooth   = 3
	rangePeriod   = 14 // Williams %R, ADX, ATR, volatility

	// MinHistory is the series length below which the set is flagged degraded.
	MinHistory = 20
)

// Options tweaks ComputeIndicators behavior.
type Options struct {
	// Synthetic marks the resulting set as derived from synthesized history.
	Synthetic bool
}

// ComputeIndicators derives the full IndicatorSet from a chronological series
// and the current market snapshot. The input is validated but never mutated.
//
// Insufficient data is not an error: every indicator degrades to its neutral
// default and the set is flagged Degraded. The only hard failure is malformed
// input (non-positive price or unordered timestamps).
func ComputeIndicators(series []types.PricePoint, snapshot types.Snapshot, opts Options) (*IndicatorSet, error) {
	if err := types.Validate(series); err != nil {
		return nil, advisorerrors.Wrap(err, advisorerrors.CategoryValidation, "analysis", "compute_indicators")
	}

	series = types.Normalize(series)
	closes := types.Closes(series)
	highs := types.Highs(series)
	lows := types.Lows(series)

	set := &IndicatorSet{
		Price:     snapshot.Price,
		Change24h: snapshot.Change24h,
		Degraded:  len(series) < MinHistory,
		Synthetic: opts.Synthetic,
	}
	if set.Price == 0 && len(closes) > 0 {
		set.Price = closes[len(closes)-1]
	}

	set.SMA7 = indicators.NewSMA(7).Calculate(closes)
	set.SMA14 = indicators.NewSMA(14).Calculate(closes)
	set.SMA21 = indicators.NewSMA(21).Calculate(closes)
	set.SMA30 = indicators.NewSMA(30).Calculate(closes)
	set.EMA12 = indicators.NewEMA(macdFast).Calculate(closes)

	set.RSI = indicators.NewRSI(rsiPeriod).Calculate(closes)
	set.FastRSI = indicators.NewRSI(fastRSIPeriod).Calculate(closes)

	set.MACD = indicators.NewMACD(macdFast, macdSlow, macdSignal).Calculate(closes)
	set.Bollinger = indicators.NewBollingerBands(bbPeriod, bbStdDev).Calculate(closes)
	set.Stoch = indicators.NewStochastic(stochPeriod, stochSmooth).Calculate(highs, lows, closes)
	set.WilliamsR, set.WilliamsOK = indicators.NewWilliamsR(rangePeriod).Calculate(highs, lows, closes)

	set.ADX = indicators.NewADX(rangePeriod).Calculate(highs, lows, closes)
	set.ATR = indicators.NewATR(rangePeriod).Calculate(highs, lows, closes)
	set.Volatility = indicators.Volatility(closes, rangePeriod)

	set.Support, set.Resistance = indicators.PercentileLevels(highs, lows)
	set.TrendStrength = indicators.TrendStrength(closes)

	set.Trend = patterns.ClassifyTrend(series)
	set.Structure = patterns.DetectStructure(series)
	set.Patterns = patterns.Detect(series)
	set.Levels = patterns.SupportResistance(series, patterns.DefaultMinTouches, patterns.DefaultTolerance)
	set.Volume = patterns.AnalyzeVolume(series)

	return set, nil
}
