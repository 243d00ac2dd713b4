package indicators

// ATR represents the Average True Range volatility indicator, computed as the
// simple average of true range over the trailing window.
type ATR struct {
	period int
}

// NewATR creates a new ATR indicator.
func NewATR(period int) *ATR {
	return &ATR{period: period}
}

// Calculate returns the average true range of the last period bars, or 0 when
// the series is too short.
func (a *ATR) Calculate(highs, lows, closes []float64) float64 {
	if len(closes) < a.period+1 || len(highs) < a.period+1 || len(lows) < a.period+1 {
		return 0
	}

	sum := 0.0
	for i := len(closes) - a.period; i < len(closes); i++ {
		sum += trueRange(highs[i], lows[i], closes[i-1])
	}
	return sum / float64(a.period)
}
