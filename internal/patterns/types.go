package patterns

// Trend classifies the moving-average ladder of a series.
type Trend string

const (
	TrendStrongBullish Trend = "STRONG_BULLISH"
	TrendBullish       Trend = "BULLISH"
	TrendSideways      Trend = "SIDEWAYS"
	TrendBearish       Trend = "BEARISH"
	TrendStrongBearish Trend = "STRONG_BEARISH"
	TrendUnknown       Trend = "UNKNOWN"
)

// StructureState describes the swing structure of recent price action.
type StructureState string

const (
	StructureUptrend       StructureState = "UPTREND"
	StructureDowntrend     StructureState = "DOWNTREND"
	StructureConsolidation StructureState = "CONSOLIDATION"
)

// MarketStructure is the result of higher-high/higher-low counting over the
// trailing window.
type MarketStructure struct {
	State       StructureState `json:"state"`
	Confidence  float64        `json:"confidence"` // 0-100
	HigherHighs int            `json:"higher_highs"`
	HigherLows  int            `json:"higher_lows"`
	LowerHighs  int            `json:"lower_highs"`
	LowerLows   int            `json:"lower_lows"`
}

// Bias is the directional implication of a detected pattern.
type Bias string

const (
	BiasBullish Bias = "BULLISH"
	BiasBearish Bias = "BEARISH"
	BiasNeutral Bias = "NEUTRAL"
)

// Pattern is a detected chart formation.
type Pattern struct {
	Name        string  `json:"name"`
	Bias        Bias    `json:"bias"`
	Confidence  float64 `json:"confidence"` // 0-100
	Description string  `json:"description"`
}

// LevelKind distinguishes support from resistance.
type LevelKind string

const (
	LevelSupport    LevelKind = "support"
	LevelResistance LevelKind = "resistance"
)

// Level is a clustered support or resistance price level.
type Level struct {
	Price    float64   `json:"price"`
	Kind     LevelKind `json:"kind"`
	Touches  int       `json:"touches"`
	Strength float64   `json:"strength"` // 0-1
}

// VolumeProfile summarizes recent volume behavior.
type VolumeProfile struct {
	Ratio float64 `json:"ratio"` // recent 5-bar average over full-window average
	Spike bool    `json:"spike"`
	// PriceVolumeConfirmed is deliberately direction-agnostic: a spike
	// coinciding with any nonzero price change counts as confirmation.
	PriceVolumeConfirmed bool `json:"price_volume_confirmed"`
}
