package indicators

// generateFlatPrices returns count prices pinned at value.
func generateFlatPrices(count int, value float64) []float64 {
	prices := make([]float64, count)
	for i := range prices {
		prices[i] = value
	}
	return prices
}

// generateRisingPrices returns count prices starting at start, each step
// higher than the last.
func generateRisingPrices(count int, start, step float64) []float64 {
	prices := make([]float64, count)
	for i := range prices {
		prices[i] = start + float64(i)*step
	}
	return prices
}

// generateCompoundingPrices returns count prices growing by rate each bar.
func generateCompoundingPrices(count int, start, rate float64) []float64 {
	prices := make([]float64, count)
	value := start
	for i := range prices {
		prices[i] = value
		value *= 1 + rate
	}
	return prices
}

// generateAcceleratingFallPrices mirrors a compounding rise below level, so
// every drop is larger than the last in absolute terms. A plain geometric
// decay shrinks its steps instead and reads as momentum fading, not building.
func generateAcceleratingFallPrices(count int, level, start, rate float64) []float64 {
	prices := generateCompoundingPrices(count, start, rate)
	for i := range prices {
		prices[i] = level - prices[i]
	}
	return prices
}
