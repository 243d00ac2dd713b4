package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA_Calculate_EmptySeries(t *testing.T) {
	sma := NewSMA(5)

	assert.Equal(t, 0.0, sma.Calculate(nil))
}

func TestSMA_Calculate_InsufficientData(t *testing.T) {
	sma := NewSMA(20)
	prices := generateRisingPrices(10, 100, 1)

	// Degrades to the last price instead of erroring.
	assert.Equal(t, prices[len(prices)-1], sma.Calculate(prices))
}

func TestSMA_Calculate_ExactPeriod(t *testing.T) {
	sma := NewSMA(5)
	prices := []float64{10, 20, 30, 40, 50}

	assert.InDelta(t, 30.0, sma.Calculate(prices), 1e-9)
}

func TestSMA_Calculate_UsesTrailingWindow(t *testing.T) {
	sma := NewSMA(3)
	prices := []float64{1, 1, 1, 10, 20, 30}

	assert.InDelta(t, 20.0, sma.Calculate(prices), 1e-9)
}

func TestSMA_Calculate_FlatSeries(t *testing.T) {
	sma := NewSMA(5)

	assert.Equal(t, 100.0, sma.Calculate(generateFlatPrices(10, 100)))
}

func TestSMA_Series_SameLengthAsInput(t *testing.T) {
	sma := NewSMA(3)
	prices := generateRisingPrices(6, 100, 1)

	series := sma.Series(prices)

	assert.Len(t, series, len(prices))
	// Warm-up prefix degrades to the last observed price.
	assert.Equal(t, prices[0], series[0])
	assert.InDelta(t, (prices[3]+prices[4]+prices[5])/3, series[5], 1e-9)
}
