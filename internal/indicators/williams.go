package indicators

// WilliamsR computes the Williams %R oscillator, ranging from -100 to 0.
type WilliamsR struct {
	period int
}

// NewWilliamsR creates a new Williams %R oscillator with the given period.
func NewWilliamsR(period int) *WilliamsR {
	return &WilliamsR{period: period}
}

// Calculate returns the oscillator value and whether it is usable. The second
// return is false on short series or a degenerate high-low range; callers
// treat that as no signal.
func (w *WilliamsR) Calculate(highs, lows, closes []float64) (float64, bool) {
	if len(closes) < w.period || len(highs) < w.period || len(lows) < w.period {
		return 0, false
	}

	hh := highest(highs[len(highs)-w.period:])
	ll := lowest(lows[len(lows)-w.period:])
	if hh == ll {
		return 0, false
	}

	close := closes[len(closes)-1]
	return (hh - close) / (hh - ll) * -100, true
}
