package strategy

import (
	"fmt"

	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/patterns"
)

// SimpleEngine scores with a small signed tally, roughly -10..+10. It is the
// fast path for plain watchlist coins; portfolio-linked coins use the
// weighted AdvancedEngine instead.
type SimpleEngine struct{}

// NewSimpleEngine creates the signed-score engine.
func NewSimpleEngine() *SimpleEngine {
	return &SimpleEngine{}
}

// Name returns the engine identifier.
func (e *SimpleEngine) Name() string {
	return "simple"
}

// Recommend tallies moving-average position, RSI extremes, trend and 24h
// overextension into a signed score and maps it onto an action.
func (e *SimpleEngine) Recommend(set *analysis.IndicatorSet) *Recommendation {
	rec := &Recommendation{Engine: e.Name()}
	score := 0.0

	for _, ma := range []struct {
		name  string
		value float64
	}{
		{"SMA7", set.SMA7},
		{"SMA14", set.SMA14},
	} {
		if set.Price > ma.value {
			score++
			rec.Signals = append(rec.Signals, Signal{
				Kind: SignalBuy, Source: ma.name, Strength: 0.3,
				Reason: fmt.Sprintf("price above %s (%.4f)", ma.name, ma.value),
			})
		} else if set.Price < ma.value {
			score--
			rec.Warnings = append(rec.Warnings, Signal{
				Kind: SignalSell, Source: ma.name, Strength: 0.3,
				Reason: fmt.Sprintf("price below %s (%.4f)", ma.name, ma.value),
			})
		}
	}

	if set.RSI < 30 {
		score += 2
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "RSI", Strength: 0.6,
			Reason: fmt.Sprintf("RSI oversold at %.1f", set.RSI),
		})
	} else if set.RSI > 70 {
		score -= 2
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "RSI", Strength: 0.6,
			Reason: fmt.Sprintf("RSI overbought at %.1f", set.RSI),
		})
	}

	// Strong trends weigh one point more than plain ones so a clean ladder
	// can carry the score into strong-buy territory on its own.
	switch set.Trend {
	case patterns.TrendStrongBullish:
		score += 3
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "trend", Strength: 0.9,
			Reason: "strong bullish moving-average ladder",
		})
	case patterns.TrendBullish:
		score += 2
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "trend", Strength: 0.6,
			Reason: "bullish moving-average alignment",
		})
	case patterns.TrendStrongBearish:
		score -= 3
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "trend", Strength: 0.9,
			Reason: "strong bearish moving-average ladder",
		})
	case patterns.TrendBearish:
		score -= 2
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "trend", Strength: 0.6,
			Reason: "bearish moving-average alignment",
		})
	}

	// Contrarian adjustment: a large 24h move reads as overextension or
	// opportunity, against the move's direction.
	if set.Change24h > 5 {
		score--
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "change_24h", Strength: 0.3,
			Reason: fmt.Sprintf("up %.1f%% in 24h, overextended", set.Change24h),
		})
	} else if set.Change24h < -5 {
		score++
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "change_24h", Strength: 0.3,
			Reason: fmt.Sprintf("down %.1f%% in 24h, dip opportunity", set.Change24h),
		})
	}

	rec.Score = score
	rec.Action, rec.Confidence = simpleVerdict(score)
	return rec
}

func simpleVerdict(score float64) (Action, Confidence) {
	switch {
	case score >= 3:
		return ActionStrongBuy, ConfidenceHigh
	case score >= 1:
		return ActionBuy, ConfidenceMedium
	case score <= -3:
		return ActionStrongSell, ConfidenceHigh
	case score <= -1:
		return ActionSell, ConfidenceMedium
	default:
		return ActionHold, ConfidenceLow
	}
}
