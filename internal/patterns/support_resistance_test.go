package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportResistance_SingleClusteredLevel(t *testing.T) {
	// Five touches near $100 inside a 20-point window; every other close is
	// scattered more than 2% from its neighbors so no second cluster forms.
	closes := []float64{
		100, 150, 99.5, 154.5, 100.5, 159.1, 100.2, 163.9, 99.8, 168.8,
		173.9, 179.1, 184.5, 190.0, 195.7, 201.6, 207.6, 213.8, 220.2, 110,
	}
	series := seriesFromCloses(closes)

	levels := SupportResistance(series, 3, 0.02)

	require.Len(t, levels, 1)
	assert.InDelta(t, 100.0, levels[0].Price, 1.0)
	assert.Equal(t, 5, levels[0].Touches)
	assert.Equal(t, 0.5, levels[0].Strength)
	assert.Equal(t, LevelSupport, levels[0].Kind)
}

func TestSupportResistance_LevelAboveCurrentIsResistance(t *testing.T) {
	closes := []float64{110, 110.5, 109.8, 110.2, 95}
	series := seriesFromCloses(closes)

	levels := SupportResistance(series, 3, 0.02)

	require.Len(t, levels, 1)
	assert.Equal(t, LevelResistance, levels[0].Kind)
	assert.InDelta(t, 110.0, levels[0].Price, 0.5)
}

func TestSupportResistance_MinTouchesFiltersWeakLevels(t *testing.T) {
	closes := []float64{100, 100.5, 200, 201, 100.2, 99.8, 300}
	series := seriesFromCloses(closes)

	levels := SupportResistance(series, 3, 0.02)

	// The 200 pair has only two touches and is dropped.
	require.Len(t, levels, 1)
	assert.InDelta(t, 100.0, levels[0].Price, 0.5)
	assert.Equal(t, 4, levels[0].Touches)
}

func TestSupportResistance_StrengthCapsAtOne(t *testing.T) {
	series := seriesFromCloses(flatCloses(25, 100))

	levels := SupportResistance(series, 3, 0.02)

	require.Len(t, levels, 1)
	assert.Equal(t, 25, levels[0].Touches)
	assert.Equal(t, 1.0, levels[0].Strength)
}

func TestSupportResistance_EmptySeries(t *testing.T) {
	assert.Nil(t, SupportResistance(nil, 3, 0.02))
}
