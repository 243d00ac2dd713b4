package indicators

import "math"

// NeutralRSI is the degraded default when the series is too short.
const NeutralRSI = 50.0

// RSI calculates the Relative Strength Index over a trailing window.
//
// Gains and losses are simple averages over the last period deltas, not
// Wilder's smoothed running averages. This diverges slightly from the
// textbook definition but is kept intentionally so results stay comparable
// with the original analysis output.
type RSI struct {
	period int
}

// NewRSI creates a new RSI instance with the given period.
func NewRSI(period int) *RSI {
	return &RSI{period: period}
}

// Calculate computes the RSI value in [0,100]. A series shorter than
// period+1 returns the neutral default 50; an all-gain window returns 100.
func (r *RSI) Calculate(prices []float64) float64 {
	if len(prices) < r.period+1 {
		return NeutralRSI
	}

	gains := 0.0
	losses := 0.0
	for i := len(prices) - r.period; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses += math.Abs(change)
		}
	}

	avgGain := gains / float64(r.period)
	avgLoss := losses / float64(r.period)
	if avgLoss == 0 {
		if avgGain == 0 {
			return NeutralRSI
		}
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// Period returns the configured window size.
func (r *RSI) Period() int {
	return r.period
}
