package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectStructure_Uptrend(t *testing.T) {
	series := seriesWithRange(risingCloses(15, 100, 2), 0.5)

	structure := DetectStructure(series)

	assert.Equal(t, StructureUptrend, structure.State)
	assert.Equal(t, 9, structure.HigherHighs)
	assert.Equal(t, 9, structure.HigherLows)
	assert.Equal(t, 100.0, structure.Confidence)
}

func TestDetectStructure_Downtrend(t *testing.T) {
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 200 - float64(i)*2
	}
	series := seriesWithRange(closes, 0.5)

	structure := DetectStructure(series)

	assert.Equal(t, StructureDowntrend, structure.State)
	assert.Equal(t, 9, structure.LowerHighs)
	assert.Equal(t, 9, structure.LowerLows)
}

func TestDetectStructure_FlatIsConsolidation(t *testing.T) {
	series := seriesWithRange(flatCloses(15, 100), 0.5)

	structure := DetectStructure(series)

	assert.Equal(t, StructureConsolidation, structure.State)
	assert.Equal(t, 0, structure.HigherHighs)
	assert.Equal(t, 0, structure.LowerLows)
	assert.Equal(t, 0.0, structure.Confidence)
}

func TestDetectStructure_ExpandingRangeIsConsolidation(t *testing.T) {
	// Higher highs but lower lows: directional on neither side.
	series := seriesFromCloses(flatCloses(10, 100))
	for i := range series {
		series[i].High = 101 + float64(i)
		series[i].Low = 99 - float64(i)
	}

	structure := DetectStructure(series)

	assert.Equal(t, StructureConsolidation, structure.State)
	assert.Equal(t, 9, structure.HigherHighs)
	assert.Equal(t, 9, structure.LowerLows)
}

func TestDetectStructure_UsesTrailingWindowOnly(t *testing.T) {
	// Long downtrend followed by ten rising bars: only the window counts.
	closes := make([]float64, 30)
	for i := 0; i < 20; i++ {
		closes[i] = 300 - float64(i)*5
	}
	for i := 20; i < 30; i++ {
		closes[i] = 200 + float64(i-20)*4
	}
	series := seriesWithRange(closes, 0.5)

	structure := DetectStructure(series)

	assert.Equal(t, StructureUptrend, structure.State)
}
