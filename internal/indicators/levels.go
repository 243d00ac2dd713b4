package indicators

import "sort"

// PercentileLevels derives a support and resistance estimate from the trailing
// window: support is the 25th percentile of lows sorted ascending, resistance
// the 25th percentile of highs sorted descending. Empty input yields zeros.
func PercentileLevels(highs, lows []float64) (support, resistance float64) {
	if len(lows) > 0 {
		sorted := append([]float64(nil), lows...)
		sort.Float64s(sorted)
		support = sorted[len(sorted)/4]
	}
	if len(highs) > 0 {
		sorted := append([]float64(nil), highs...)
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
		resistance = sorted[len(sorted)/4]
	}
	return support, resistance
}
