package indicators

// BollingerResult holds the band values for the most recent window.
// A nil result means the series was too short to qualify.
type BollingerResult struct {
	Upper     float64 `json:"upper"`
	Middle    float64 `json:"middle"`
	Lower     float64 `json:"lower"`
	Bandwidth float64 `json:"bandwidth"` // percent of the middle band
	Position  float64 `json:"position"`  // 0 = lower band, 1 = upper band; may exceed on breakout
}

// BollingerBands represents the Bollinger Bands indicator.
type BollingerBands struct {
	period         int
	stdDevMultiple float64
}

// NewBollingerBands creates a new BollingerBands instance with the given
// period and standard deviation multiplier.
func NewBollingerBands(period int, stdDev float64) *BollingerBands {
	return &BollingerBands{
		period:         period,
		stdDevMultiple: stdDev,
	}
}

// Calculate computes the bands over the trailing window using the population
// standard deviation. Returns nil when the series is shorter than the period.
func (bb *BollingerBands) Calculate(prices []float64) *BollingerResult {
	if len(prices) < bb.period {
		return nil
	}

	window := prices[len(prices)-bb.period:]
	middle := mean(window)
	sd := stdDev(window)

	upper := middle + bb.stdDevMultiple*sd
	lower := middle - bb.stdDevMultiple*sd

	bandwidth := 0.0
	if middle != 0 {
		bandwidth = (2 * bb.stdDevMultiple * sd / middle) * 100
	}

	position := 0.5
	if upper != lower {
		position = (prices[len(prices)-1] - lower) / (upper - lower)
	}

	return &BollingerResult{
		Upper:     upper,
		Middle:    middle,
		Lower:     lower,
		Bandwidth: bandwidth,
		Position:  position,
	}
}
