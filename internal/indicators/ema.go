package indicators

// EMA represents the Exponential Moving Average technical indicator.
type EMA struct {
	period int
	alpha  float64
}

// NewEMA creates a new EMA indicator.
func NewEMA(period int) *EMA {
	return &EMA{
		period: period,
		alpha:  2.0 / float64(period+1),
	}
}

// Calculate returns the most recent EMA value. The series is seeded with the
// SMA of the first period prices and iterated forward. Shorter series degrade
// to the last price (or 0 when empty).
func (e *EMA) Calculate(prices []float64) float64 {
	series := e.Series(prices)
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}

// Series returns the EMA for every index at and after the seed window. The
// first element corresponds to prices[period-1]. A series shorter than the
// period yields a single degraded element (the last price).
func (e *EMA) Series(prices []float64) []float64 {
	if len(prices) == 0 {
		return nil
	}
	if len(prices) < e.period {
		return []float64{prices[len(prices)-1]}
	}

	out := make([]float64, 0, len(prices)-e.period+1)
	value := mean(prices[:e.period])
	out = append(out, value)
	for i := e.period; i < len(prices); i++ {
		value = prices[i]*e.alpha + value*(1-e.alpha)
		out = append(out, value)
	}
	return out
}

// Period returns the configured window size.
func (e *EMA) Period() int {
	return e.period
}
