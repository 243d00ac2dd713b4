package indicators

// SMA represents the Simple Moving Average technical indicator.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator.
func NewSMA(period int) *SMA {
	return &SMA{period: period}
}

// Calculate returns the mean of the last period prices. When the series is
// shorter than the period it degrades to the last price (or 0 for an empty
// series) rather than erroring.
func (s *SMA) Calculate(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	if len(prices) < s.period {
		return prices[len(prices)-1]
	}
	return mean(prices[len(prices)-s.period:])
}

// Series computes the SMA at every index, using the degraded value for the
// warm-up prefix so the output has the same length as the input.
func (s *SMA) Series(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i := range prices {
		out[i] = s.Calculate(prices[:i+1])
	}
	return out
}

// Period returns the configured window size.
func (s *SMA) Period() int {
	return s.period
}
