package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA_Calculate_InsufficientData(t *testing.T) {
	ema := NewEMA(10)
	prices := []float64{100, 101, 102}

	assert.Equal(t, 102.0, ema.Calculate(prices))
}

func TestEMA_Calculate_EmptySeries(t *testing.T) {
	ema := NewEMA(10)

	assert.Equal(t, 0.0, ema.Calculate(nil))
}

func TestEMA_Calculate_SeededWithSMA(t *testing.T) {
	// Period 3 gives alpha 0.5: seed = mean(1,2,3) = 2,
	// then 4*0.5 + 2*0.5 = 3, then 5*0.5 + 3*0.5 = 4.
	ema := NewEMA(3)
	prices := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 4.0, ema.Calculate(prices), 1e-9)
}

func TestEMA_Series_CoversSeedOnward(t *testing.T) {
	ema := NewEMA(3)
	prices := []float64{1, 2, 3, 4, 5}

	series := ema.Series(prices)

	require.Len(t, series, 3)
	assert.InDelta(t, 2.0, series[0], 1e-9)
	assert.InDelta(t, 3.0, series[1], 1e-9)
	assert.InDelta(t, 4.0, series[2], 1e-9)
}

func TestEMA_Calculate_FlatSeries(t *testing.T) {
	ema := NewEMA(5)

	assert.InDelta(t, 100.0, ema.Calculate(generateFlatPrices(30, 100)), 1e-9)
}
