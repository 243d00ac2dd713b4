package analysis

import (
	"github.com/ducanhng/crypto-advisor/internal/indicators"
	"github.com/ducanhng/crypto-advisor/internal/patterns"
)

// IndicatorSet aggregates every computed indicator for one coin at one point
// in time. It is a value object: created by ComputeIndicators, never mutated,
// recomputed fresh on every scoring request.
type IndicatorSet struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`

	SMA7  float64 `json:"sma_7"`
	SMA14 float64 `json:"sma_14"`
	SMA21 float64 `json:"sma_21"`
	SMA30 float64 `json:"sma_30"`
	EMA12 float64 `json:"ema_12"`

	RSI     float64 `json:"rsi"`      // 14-period
	FastRSI float64 `json:"fast_rsi"` // 7-period

	// Nil when the series is too short to qualify; scorers treat nil as neutral.
	MACD      *indicators.MACDResult       `json:"macd,omitempty"`
	Bollinger *indicators.BollingerResult  `json:"bollinger,omitempty"`
	Stoch     *indicators.StochasticResult `json:"stochastic,omitempty"`

	WilliamsR  float64 `json:"williams_r"`
	WilliamsOK bool    `json:"williams_ok"`

	ADX        float64 `json:"adx"`
	ATR        float64 `json:"atr"`
	Volatility float64 `json:"volatility"` // annualized, percent

	Support       float64 `json:"support"`    // percentile-based
	Resistance    float64 `json:"resistance"` // percentile-based
	TrendStrength float64 `json:"trend_strength"`

	Trend     patterns.Trend          `json:"trend"`
	Structure patterns.MarketStructure `json:"structure"`
	Patterns  []patterns.Pattern      `json:"patterns,omitempty"`
	Levels    []patterns.Level        `json:"levels,omitempty"`
	Volume    patterns.VolumeProfile  `json:"volume"`

	// Degraded marks a set computed from a series shorter than the minimum
	// history; most indicators carry their neutral defaults.
	Degraded bool `json:"degraded"`
	// Synthetic marks a set computed from a synthesized series; consumers
	// should treat the derived signals as lower confidence.
	Synthetic bool `json:"synthetic"`
}
