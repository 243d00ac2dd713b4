package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolatility_InsufficientData(t *testing.T) {
	assert.Equal(t, 0.0, Volatility(generateRisingPrices(10, 100, 1), 14))
}

func TestVolatility_FlatSeries(t *testing.T) {
	assert.Equal(t, 0.0, Volatility(generateFlatPrices(30, 100), 14))
}

func TestVolatility_PositiveForSwings(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		if i%2 == 0 {
			prices[i] = 100
		} else {
			prices[i] = 105
		}
	}

	assert.Positive(t, Volatility(prices, 14))
}

func TestVolatility_ScalesWithSwingSize(t *testing.T) {
	small := make([]float64, 30)
	large := make([]float64, 30)
	for i := range small {
		small[i] = 100
		large[i] = 100
		if i%2 == 1 {
			small[i] = 101
			large[i] = 110
		}
	}

	assert.Greater(t, Volatility(large, 14), Volatility(small, 14))
}
