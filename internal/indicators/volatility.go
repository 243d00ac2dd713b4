package indicators

import "math"

// tradingDaysPerYear is the conventional annualization factor for daily returns.
const tradingDaysPerYear = 252

// Volatility returns the annualized standard deviation of daily returns over
// the trailing window, expressed as a percentage. Returns 0 when there are
// not enough prices for the window.
func Volatility(prices []float64, period int) float64 {
	if len(prices) < period+1 {
		return 0
	}

	returns := make([]float64, 0, period)
	for i := len(prices) - period; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}
	if len(returns) == 0 {
		return 0
	}

	return stdDev(returns) * math.Sqrt(tradingDaysPerYear) * 100
}
