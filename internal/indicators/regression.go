package indicators

// trendWindow is the number of trailing points used for trend strength.
const trendWindow = 20

// LinearRegression fits an ordinary least squares line of values against
// their index and returns the slope, intercept and coefficient of
// determination. Fewer than two points yields a flat fit.
func LinearRegression(values []float64) (slope, intercept, r2 float64) {
	n := float64(len(values))
	if len(values) < 2 {
		if len(values) == 1 {
			intercept = values[0]
		}
		return 0, intercept, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	// R^2 = 1 - SSres/SStot
	meanY := sumY / n
	var ssRes, ssTot float64
	for i, v := range values {
		predicted := intercept + slope*float64(i)
		ssRes += (v - predicted) * (v - predicted)
		ssTot += (v - meanY) * (v - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 0
	}
	return slope, intercept, 1 - ssRes/ssTot
}

// TrendStrength fits a regression over the trailing 20 prices and returns
// R-squared scaled to [0,100].
func TrendStrength(prices []float64) float64 {
	window := prices
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	_, _, r2 := LinearRegression(window)
	return Clamp(r2*100, 0, 100)
}
