package patterns

import "github.com/ducanhng/crypto-advisor/pkg/types"

const dayMillis = int64(24 * 60 * 60 * 1000)

// seriesFromCloses builds a daily series where high/low default to the close.
func seriesFromCloses(closes []float64) []types.PricePoint {
	series := make([]types.PricePoint, len(closes))
	for i, c := range closes {
		series[i] = types.PricePoint{
			Timestamp: int64(i) * dayMillis,
			Price:     c,
			High:      c,
			Low:       c,
		}
	}
	return series
}

// seriesWithRange builds a daily series with highs/lows spread around closes.
func seriesWithRange(closes []float64, spread float64) []types.PricePoint {
	series := seriesFromCloses(closes)
	for i := range series {
		series[i].High = closes[i] + spread
		series[i].Low = closes[i] - spread
	}
	return series
}

func risingCloses(count int, start, step float64) []float64 {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return closes
}

func flatCloses(count int, value float64) []float64 {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = value
	}
	return closes
}
