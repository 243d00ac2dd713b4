package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/patterns"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

func TestSimpleEngine_MonotonicRiseIsStrongBuy(t *testing.T) {
	series := make([]types.PricePoint, 20)
	for i := range series {
		series[i] = types.PricePoint{
			Timestamp: int64(i) * dayMillis,
			Price:     100 + float64(i)*50/19,
		}
	}
	snapshot := types.Snapshot{Price: 150, Change24h: 5}

	set, err := analysis.ComputeIndicators(series, snapshot, analysis.Options{})
	require.NoError(t, err)

	rec := NewSimpleEngine().Recommend(set)

	assert.GreaterOrEqual(t, rec.Score, 3.0)
	assert.Equal(t, ActionStrongBuy, rec.Action)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.NotEmpty(t, rec.Signals)
}

func TestSimpleEngine_FlatSeriesHolds(t *testing.T) {
	series := make([]types.PricePoint, 30)
	for i := range series {
		series[i] = types.PricePoint{Timestamp: int64(i) * dayMillis, Price: 100}
	}
	snapshot := types.Snapshot{Price: 100, Change24h: 0}

	set, err := analysis.ComputeIndicators(series, snapshot, analysis.Options{})
	require.NoError(t, err)
	assert.Equal(t, patterns.TrendSideways, set.Trend)
	assert.InDelta(t, 50.0, set.RSI, 1e-9)

	rec := NewSimpleEngine().Recommend(set)

	assert.Equal(t, 0.0, rec.Score)
	assert.Equal(t, ActionHold, rec.Action)
	assert.Equal(t, ConfidenceLow, rec.Confidence)
}

func TestSimpleEngine_OverboughtTrimsScore(t *testing.T) {
	set := &analysis.IndicatorSet{
		Price: 100, SMA7: 90, SMA14: 92,
		RSI:   80,
		Trend: patterns.TrendBullish,
	}

	rec := NewSimpleEngine().Recommend(set)

	// +1 +1 -2 +2 = 2: buy, but not a strong one.
	assert.Equal(t, 2.0, rec.Score)
	assert.Equal(t, ActionBuy, rec.Action)
	assert.Equal(t, ConfidenceMedium, rec.Confidence)
}

func TestSimpleEngine_BreakdownBelowAveragesIsStrongSell(t *testing.T) {
	set := &analysis.IndicatorSet{
		Price: 80, SMA7: 90, SMA14: 95,
		RSI:   40,
		Trend: patterns.TrendStrongBearish,
	}

	rec := NewSimpleEngine().Recommend(set)

	assert.Equal(t, -5.0, rec.Score)
	assert.Equal(t, ActionStrongSell, rec.Action)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.NotEmpty(t, rec.Warnings)
}

func TestSimpleEngine_ContrarianAdjustments(t *testing.T) {
	neutral := &analysis.IndicatorSet{
		Price: 100, SMA7: 100, SMA14: 100,
		RSI: 50, Trend: patterns.TrendSideways,
	}

	pumped := *neutral
	pumped.Change24h = 8
	assert.Equal(t, -1.0, NewSimpleEngine().Recommend(&pumped).Score)

	dumped := *neutral
	dumped.Change24h = -8
	assert.Equal(t, 1.0, NewSimpleEngine().Recommend(&dumped).Score)
}
