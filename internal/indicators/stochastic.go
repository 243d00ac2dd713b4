package indicators

// StochasticResult holds the %K and %D oscillator values.
// A nil result means there was too little data or the high-low range was
// degenerate (highest high equals lowest low); callers treat nil as no signal.
type StochasticResult struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
}

// Stochastic computes the stochastic oscillator.
type Stochastic struct {
	kPeriod int
	dPeriod int
}

// NewStochastic creates a new stochastic oscillator with the given %K window
// and %D smoothing period.
func NewStochastic(kPeriod, dPeriod int) *Stochastic {
	return &Stochastic{kPeriod: kPeriod, dPeriod: dPeriod}
}

// Calculate computes %K over the trailing window and %D as the SMA of the
// last dPeriod %K values.
func (s *Stochastic) Calculate(highs, lows, closes []float64) *StochasticResult {
	if len(closes) < s.kPeriod || len(highs) < s.kPeriod || len(lows) < s.kPeriod {
		return nil
	}

	k, ok := s.percentK(highs, lows, closes, len(closes))
	if !ok {
		return nil
	}

	// Build the trailing %K series for %D smoothing, skipping degenerate windows.
	kSeries := make([]float64, 0, s.dPeriod)
	for end := len(closes) - s.dPeriod + 1; end <= len(closes); end++ {
		if end < s.kPeriod {
			continue
		}
		if v, ok := s.percentK(highs, lows, closes, end); ok {
			kSeries = append(kSeries, v)
		}
	}
	d := k
	if len(kSeries) > 0 {
		d = mean(kSeries)
	}

	return &StochasticResult{K: k, D: d}
}

// percentK computes %K for the window ending at index end (exclusive).
func (s *Stochastic) percentK(highs, lows, closes []float64, end int) (float64, bool) {
	hh := highest(highs[end-s.kPeriod : end])
	ll := lowest(lows[end-s.kPeriod : end])
	if hh == ll {
		return 0, false
	}
	return (closes[end-1] - ll) / (hh - ll) * 100, true
}
