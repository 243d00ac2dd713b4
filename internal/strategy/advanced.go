package strategy

import (
	"fmt"

	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/indicators"
	"github.com/ducanhng/crypto-advisor/internal/patterns"
)

// Category weights for the advanced composite. They sum to 1.0; the final
// score still divides by the sum defensively in case they are ever retuned.
var advancedWeights = []struct {
	category string
	weight   float64
}{
	{"trend", 0.25},
	{"momentum", 0.20},
	{"movingAverages", 0.15},
	{"macd", 0.10},
	{"bollinger", 0.08},
	{"volume", 0.07},
	{"patterns", 0.10},
	{"marketStructure", 0.05},
}

const neutralScore = 50.0

// AdvancedEngine fuses eight category sub-scores into a weighted 0-100
// composite with derived stop-loss/take-profit levels. Used for
// portfolio-linked coins where the fuller breakdown is worth the extra work.
type AdvancedEngine struct{}

// NewAdvancedEngine creates the weighted composite engine.
func NewAdvancedEngine() *AdvancedEngine {
	return &AdvancedEngine{}
}

// Name returns the engine identifier.
func (e *AdvancedEngine) Name() string {
	return "advanced"
}

// Weights exposes the category weights for reporting.
func (e *AdvancedEngine) Weights() map[string]float64 {
	out := make(map[string]float64, len(advancedWeights))
	for _, w := range advancedWeights {
		out[w.category] = w.weight
	}
	return out
}

// Recommend computes every category sub-score on a 0-100 scale (50 neutral),
// combines them by fixed weights and derives action, confidence and key
// levels. Deterministic: identical input yields an identical recommendation.
func (e *AdvancedEngine) Recommend(set *analysis.IndicatorSet) *Recommendation {
	rec := &Recommendation{
		Engine:    e.Name(),
		Breakdown: make(map[string]float64, len(advancedWeights)),
	}

	scores := map[string]float64{
		"trend":           e.scoreTrend(set, rec),
		"momentum":        e.scoreMomentum(set, rec),
		"movingAverages":  e.scoreMovingAverages(set, rec),
		"macd":            e.scoreMACD(set, rec),
		"bollinger":       e.scoreBollinger(set, rec),
		"volume":          e.scoreVolume(set, rec),
		"patterns":        e.scorePatterns(set, rec),
		"marketStructure": e.scoreStructure(set, rec),
	}

	// Fixed iteration order keeps float accumulation bit-identical run to run.
	var weighted, totalWeight float64
	for _, w := range advancedWeights {
		score := indicators.Clamp(scores[w.category], 0, 100)
		rec.Breakdown[w.category] = score
		weighted += score * w.weight
		totalWeight += w.weight
	}
	rec.Score = weighted / totalWeight

	rec.Action, rec.Confidence = advancedVerdict(rec.Score)
	if len(rec.Warnings) > len(rec.Signals) {
		rec.Confidence = downgrade(rec.Confidence)
	}
	rec.KeyLevels = deriveKeyLevels(set, rec.Action)
	return rec
}

func (e *AdvancedEngine) scoreTrend(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	score := neutralScore
	switch set.Trend {
	case patterns.TrendStrongBullish:
		score = 90
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "trend", Strength: 0.9,
			Reason: "strong bullish trend, price above stacked MAs",
		})
	case patterns.TrendBullish:
		score = 75
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "trend", Strength: 0.6,
			Reason: "bullish trend",
		})
	case patterns.TrendSideways:
		score = 50
	case patterns.TrendBearish:
		score = 25
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "trend", Strength: 0.6,
			Reason: "bearish trend",
		})
	case patterns.TrendStrongBearish:
		score = 10
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "trend", Strength: 0.9,
			Reason: "strong bearish trend, price below stacked MAs",
		})
	}

	if set.TrendStrength > 70 {
		switch set.Trend {
		case patterns.TrendStrongBullish, patterns.TrendBullish:
			score += 10
		case patterns.TrendStrongBearish, patterns.TrendBearish:
			score -= 10
		}
	}
	return score
}

func (e *AdvancedEngine) scoreMomentum(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	score := neutralScore

	switch {
	case set.RSI < 30:
		score += 20
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "RSI", Strength: 0.7,
			Reason: fmt.Sprintf("RSI oversold at %.1f", set.RSI),
		})
	case set.RSI > 70:
		score -= 15
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "RSI", Strength: 0.7,
			Reason: fmt.Sprintf("RSI overbought at %.1f", set.RSI),
		})
	case set.RSI >= 45 && set.RSI <= 55:
		score += 5
	}

	if set.FastRSI < 25 {
		score += 15
	} else if set.FastRSI > 75 {
		score -= 10
	}

	if set.Stoch != nil {
		if set.Stoch.K < 20 && set.Stoch.D < 20 {
			score += 15
			rec.Signals = append(rec.Signals, Signal{
				Kind: SignalBuy, Source: "stochastic", Strength: 0.5,
				Reason: fmt.Sprintf("stochastic oversold (%%K %.1f, %%D %.1f)", set.Stoch.K, set.Stoch.D),
			})
		} else if set.Stoch.K > 80 && set.Stoch.D > 80 {
			score -= 10
			rec.Warnings = append(rec.Warnings, Signal{
				Kind: SignalSell, Source: "stochastic", Strength: 0.5,
				Reason: fmt.Sprintf("stochastic overbought (%%K %.1f, %%D %.1f)", set.Stoch.K, set.Stoch.D),
			})
		}
	}

	if set.WilliamsOK {
		if set.WilliamsR < -80 {
			score += 10
		} else if set.WilliamsR > -20 {
			score -= 8
		}
	}
	return score
}

func (e *AdvancedEngine) scoreMovingAverages(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	score := neutralScore
	mas := []float64{set.SMA7, set.SMA14, set.SMA21, set.SMA30}

	above := 0
	below := 0
	for _, ma := range mas {
		if set.Price > ma {
			score += 5
			above++
		} else if set.Price < ma {
			score -= 3
			below++
		}
	}
	if above == len(mas) {
		score += 10
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "movingAverages", Strength: 0.6,
			Reason: "price above all major moving averages",
		})
	} else if below == len(mas) {
		score -= 15
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "movingAverages", Strength: 0.6,
			Reason: "price below all major moving averages",
		})
	}

	if set.SMA7 > set.SMA14 && set.SMA14 > set.SMA21 && set.SMA21 > set.SMA30 {
		score += 15
	} else if set.SMA7 < set.SMA14 && set.SMA14 < set.SMA21 && set.SMA21 < set.SMA30 {
		score -= 15
	}

	if set.EMA12 > set.SMA14 {
		score += 5
	}
	return score
}

func (e *AdvancedEngine) scoreMACD(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	if set.MACD == nil {
		return neutralScore
	}
	score := neutralScore

	if set.MACD.Bullish {
		score += 20
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "MACD", Strength: 0.7,
			Reason: "MACD bullish crossover",
		})
	} else if set.MACD.Bearish {
		score -= 20
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "MACD", Strength: 0.7,
			Reason: "MACD bearish crossover",
		})
	}

	if set.MACD.Histogram > 0 {
		score += 10
	} else if set.MACD.Histogram < 0 {
		score -= 10
	}
	return score
}

func (e *AdvancedEngine) scoreBollinger(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	if set.Bollinger == nil {
		return neutralScore
	}
	score := neutralScore

	if set.Bollinger.Position < 0.2 {
		score += 15
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "bollinger", Strength: 0.5,
			Reason: "price near lower Bollinger band",
		})
	} else if set.Bollinger.Position > 0.8 {
		score -= 10
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "bollinger", Strength: 0.5,
			Reason: "price near upper Bollinger band",
		})
	}

	if set.Bollinger.Bandwidth < 10 {
		score += 5 // squeeze, breakout potential
	}
	return score
}

func (e *AdvancedEngine) scoreVolume(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	score := neutralScore
	if set.Volume.Ratio > 1.5 {
		score += 15
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "volume", Strength: 0.4,
			Reason: fmt.Sprintf("volume spike, %.1fx average", set.Volume.Ratio),
		})
	} else if set.Volume.Ratio < 0.5 {
		score -= 10
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalHold, Source: "volume", Strength: 0.3,
			Reason: "volume drying up",
		})
	}
	return score
}

func (e *AdvancedEngine) scorePatterns(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	score := neutralScore
	for _, p := range set.Patterns {
		switch p.Bias {
		case patterns.BiasBullish:
			score += p.Confidence * 0.3
			rec.Signals = append(rec.Signals, Signal{
				Kind: SignalBuy, Source: p.Name, Strength: p.Confidence / 100,
				Reason: p.Description,
			})
		case patterns.BiasBearish:
			score -= p.Confidence * 0.3
			rec.Warnings = append(rec.Warnings, Signal{
				Kind: SignalSell, Source: p.Name, Strength: p.Confidence / 100,
				Reason: p.Description,
			})
		}
	}
	return score
}

func (e *AdvancedEngine) scoreStructure(set *analysis.IndicatorSet, rec *Recommendation) float64 {
	score := neutralScore
	switch set.Structure.State {
	case patterns.StructureUptrend:
		score += set.Structure.Confidence * 0.3
		rec.Signals = append(rec.Signals, Signal{
			Kind: SignalBuy, Source: "marketStructure", Strength: set.Structure.Confidence / 100,
			Reason: fmt.Sprintf("uptrend structure, %d higher highs / %d higher lows",
				set.Structure.HigherHighs, set.Structure.HigherLows),
		})
	case patterns.StructureDowntrend:
		score -= set.Structure.Confidence * 0.3
		rec.Warnings = append(rec.Warnings, Signal{
			Kind: SignalSell, Source: "marketStructure", Strength: set.Structure.Confidence / 100,
			Reason: fmt.Sprintf("downtrend structure, %d lower highs / %d lower lows",
				set.Structure.LowerHighs, set.Structure.LowerLows),
		})
	}
	return score
}

func advancedVerdict(score float64) (Action, Confidence) {
	switch {
	case score >= 75:
		return ActionStrongBuy, ConfidenceHigh
	case score >= 60:
		if score >= 70 {
			return ActionBuy, ConfidenceHigh
		}
		return ActionBuy, ConfidenceMedium
	case score >= 40:
		return ActionHold, ConfidenceMedium
	case score >= 25:
		if score <= 30 {
			return ActionSell, ConfidenceHigh
		}
		return ActionSell, ConfidenceMedium
	default:
		return ActionStrongSell, ConfidenceHigh
	}
}

func downgrade(c Confidence) Confidence {
	if c == ConfidenceHigh {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

// deriveKeyLevels computes stop-loss and take-profit anchored on ATR and the
// percentile support/resistance estimates.
func deriveKeyLevels(set *analysis.IndicatorSet, action Action) *KeyLevels {
	levels := &KeyLevels{
		Support:    set.Support,
		Resistance: set.Resistance,
		StopLoss:   set.Price - 2*set.ATR,
		TakeProfit: set.Price,
	}

	switch action {
	case ActionStrongBuy, ActionBuy:
		levels.TakeProfit = set.Price + 3*set.ATR
		if set.Resistance > levels.TakeProfit {
			levels.TakeProfit = set.Resistance
		}
	case ActionStrongSell, ActionSell:
		levels.TakeProfit = set.Price - 3*set.ATR
		if set.Support != 0 && set.Support < levels.TakeProfit {
			levels.TakeProfit = set.Support
		}
	}
	return levels
}
