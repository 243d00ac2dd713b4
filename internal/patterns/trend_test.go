package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTrend_TooFewPoints(t *testing.T) {
	series := seriesFromCloses(risingCloses(9, 100, 1))

	assert.Equal(t, TrendUnknown, ClassifyTrend(series))
}

func TestClassifyTrend_StrongBullish(t *testing.T) {
	series := seriesFromCloses(risingCloses(40, 100, 2))

	assert.Equal(t, TrendStrongBullish, ClassifyTrend(series))
}

func TestClassifyTrend_StrongBearish(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 200 - float64(i)*2
	}

	assert.Equal(t, TrendStrongBearish, ClassifyTrend(seriesFromCloses(closes)))
}

func TestClassifyTrend_Sideways(t *testing.T) {
	series := seriesFromCloses(flatCloses(40, 100))

	assert.Equal(t, TrendSideways, ClassifyTrend(series))
}

func TestClassifyTrend_BullishWithoutFullLadder(t *testing.T) {
	// Long climb that dips at the end: price above the 14/30 SMAs but not
	// the 7-SMA, so only the weaker bullish condition holds.
	closes := risingCloses(38, 100, 2)
	top := closes[len(closes)-1]
	closes = append(closes, top-3, top-4)

	assert.Equal(t, TrendBullish, ClassifyTrend(seriesFromCloses(closes)))
}
