package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD_Calculate_InsufficientData(t *testing.T) {
	macd := NewMACD(12, 26, 9)
	prices := generateRisingPrices(20, 100, 1)

	assert.Nil(t, macd.Calculate(prices))
}

func TestMACD_Calculate_BullishOnAcceleratingRise(t *testing.T) {
	macd := NewMACD(12, 26, 9)
	prices := generateCompoundingPrices(60, 100, 0.02)

	result := macd.Calculate(prices)

	require.NotNil(t, result)
	assert.Positive(t, result.Line)
	assert.True(t, result.Bullish)
	assert.False(t, result.Bearish)
	assert.InDelta(t, result.Line-result.Signal, result.Histogram, 1e-9)
}

func TestMACD_Calculate_BearishOnAcceleratingFall(t *testing.T) {
	macd := NewMACD(12, 26, 9)
	prices := generateAcceleratingFallPrices(60, 400, 100, 0.02)

	result := macd.Calculate(prices)

	require.NotNil(t, result)
	assert.Negative(t, result.Line)
	assert.Negative(t, result.Histogram)
	assert.True(t, result.Bearish)
	assert.False(t, result.Bullish)
}

func TestMACD_Calculate_FlatSeries(t *testing.T) {
	macd := NewMACD(12, 26, 9)

	result := macd.Calculate(generateFlatPrices(60, 100))

	require.NotNil(t, result)
	assert.InDelta(t, 0.0, result.Line, 1e-9)
	assert.InDelta(t, 0.0, result.Histogram, 1e-9)
	assert.False(t, result.Bullish)
	assert.False(t, result.Bearish)
}
