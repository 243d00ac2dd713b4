package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentileLevels_KnownQuartiles(t *testing.T) {
	lows := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	highs := []float64{11, 12, 13, 14, 15, 16, 17, 18}

	support, resistance := PercentileLevels(highs, lows)

	// floor(0.25*8) = 2: third lowest low, third highest high.
	assert.Equal(t, 3.0, support)
	assert.Equal(t, 16.0, resistance)
}

func TestPercentileLevels_EmptyInput(t *testing.T) {
	support, resistance := PercentileLevels(nil, nil)

	assert.Equal(t, 0.0, support)
	assert.Equal(t, 0.0, resistance)
}

func TestPercentileLevels_SupportBelowResistance(t *testing.T) {
	closes := generateRisingPrices(30, 100, 1)
	highs := make([]float64, len(closes))
	lows := make([]float64, len(closes))
	for i, c := range closes {
		highs[i] = c + 1
		lows[i] = c - 1
	}

	support, resistance := PercentileLevels(highs, lows)

	assert.Less(t, support, resistance)
}
