package indicators

import "math"

// NeutralADX is the degraded default when the series is too short or the
// directional components degenerate.
const NeutralADX = 25.0

// ADX represents the Average Directional Index.
// Values > 20 indicate a trending market, > 40 a strong trend.
type ADX struct {
	period int
}

// NewADX creates a new ADX indicator.
func NewADX(period int) *ADX {
	return &ADX{period: period}
}

// Calculate averages true range and directional movement over the trailing
// window, derives +DI/-DI and returns the resulting DX. Degrades to the
// neutral 25 when there is insufficient data or no measurable range.
func (a *ADX) Calculate(highs, lows, closes []float64) float64 {
	if len(closes) < a.period+1 || len(highs) < a.period+1 || len(lows) < a.period+1 {
		return NeutralADX
	}

	trSum := 0.0
	plusDMSum := 0.0
	minusDMSum := 0.0
	for i := len(closes) - a.period; i < len(closes); i++ {
		trSum += trueRange(highs[i], lows[i], closes[i-1])

		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDMSum += upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDMSum += downMove
		}
	}

	avgTR := trSum / float64(a.period)
	if avgTR == 0 {
		return NeutralADX
	}

	plusDI := (plusDMSum / float64(a.period)) / avgTR * 100
	minusDI := (minusDMSum / float64(a.period)) / avgTR * 100
	diSum := plusDI + minusDI
	if diSum == 0 {
		return NeutralADX
	}

	return math.Abs(plusDI-minusDI) / diSum * 100
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(high, low, prevClose float64) float64 {
	hl := high - low
	hc := math.Abs(high - prevClose)
	lc := math.Abs(low - prevClose)
	return math.Max(hl, math.Max(hc, lc))
}
