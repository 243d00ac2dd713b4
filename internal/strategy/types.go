package strategy

import "github.com/ducanhng/crypto-advisor/internal/analysis"

// Action is the recommended position change.
type Action string

const (
	ActionStrongBuy  Action = "STRONG_BUY"
	ActionBuy        Action = "BUY"
	ActionHold       Action = "HOLD"
	ActionSell       Action = "SELL"
	ActionStrongSell Action = "STRONG_SELL"
)

// Confidence grades how much weight to put on a recommendation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// SignalKind is the direction a single signal argues for.
type SignalKind string

const (
	SignalBuy  SignalKind = "BUY"
	SignalSell SignalKind = "SELL"
	SignalHold SignalKind = "HOLD"
)

// Signal is one indicator's contribution to a recommendation, kept purely
// informational for UI transparency.
type Signal struct {
	Kind     SignalKind `json:"kind"`
	Source   string     `json:"source"`
	Strength float64    `json:"strength"` // 0-1
	Reason   string     `json:"reason"`
}

// KeyLevels are the derived trade-management prices.
type KeyLevels struct {
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit"`
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
}

// Recommendation is the ephemeral scoring output returned to the caller.
// The Breakdown (advanced engine) or raw signed Score (simple engine) is a
// first-class part of the contract, not incidental debug output.
type Recommendation struct {
	Engine     string             `json:"engine"`
	Action     Action             `json:"action"`
	Confidence Confidence         `json:"confidence"`
	Score      float64            `json:"score"`
	Signals    []Signal           `json:"signals,omitempty"`
	Warnings   []Signal           `json:"warnings,omitempty"`
	Breakdown  map[string]float64 `json:"breakdown,omitempty"`
	KeyLevels  *KeyLevels         `json:"key_levels,omitempty"`
}

// Engine turns an IndicatorSet into a Recommendation. The two engines are
// genuinely different formulas, not refinements of each other, so both stay
// exposed behind this interface and callers pick one.
type Engine interface {
	Name() string
	Recommend(set *analysis.IndicatorSet) *Recommendation
}
