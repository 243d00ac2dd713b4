package patterns

import (
	"fmt"
	"math"

	"github.com/ducanhng/crypto-advisor/internal/indicators"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

const (
	// doubleTolerance is the relative distance from the window extreme
	// within which a bar counts as a retest.
	doubleTolerance = 0.02
	// doubleMinSpan is the minimum bar distance between two retests.
	doubleMinSpan = 5
	// doubleConfidence is the fixed confidence for confirmed double patterns.
	doubleConfidence = 70.0
	// shoulderTolerance is the maximum relative asymmetry between shoulders.
	shoulderTolerance = 0.05
	// triangleWindow is the trailing window for triangle detection.
	triangleWindow = 10
	// triangleTouchTolerance is the relative distance from the flat line
	// within which a bar counts as a touch.
	triangleTouchTolerance = 0.02
)

// Detect runs all chart-pattern recognizers over the series and returns every
// confirmed formation.
func Detect(series []types.PricePoint) []Pattern {
	var found []Pattern
	if p, ok := detectDouble(types.Highs(series), true); ok {
		found = append(found, p)
	}
	if p, ok := detectDouble(types.Lows(series), false); ok {
		found = append(found, p)
	}
	if p, ok := detectHeadAndShoulders(types.Highs(series)); ok {
		found = append(found, p)
	}
	found = append(found, detectTriangles(series)...)
	return found
}

// detectDouble looks for two or more touches of the window extreme spaced far
// enough apart. top=true scans highs for a double top, otherwise lows for a
// double bottom.
func detectDouble(values []float64, top bool) (Pattern, bool) {
	if len(values) < doubleMinSpan+2 {
		return Pattern{}, false
	}

	extreme := values[0]
	for _, v := range values[1:] {
		if top && v > extreme {
			extreme = v
		}
		if !top && v < extreme {
			extreme = v
		}
	}
	if extreme == 0 {
		return Pattern{}, false
	}

	var touches []int
	for i, v := range values {
		if math.Abs(v-extreme)/extreme <= doubleTolerance {
			touches = append(touches, i)
		}
	}
	if len(touches) < 2 || touches[len(touches)-1]-touches[0] <= doubleMinSpan {
		return Pattern{}, false
	}

	if top {
		return Pattern{
			Name:        "double_top",
			Bias:        BiasBearish,
			Confidence:  doubleConfidence,
			Description: fmt.Sprintf("%d touches near %.4f resistance", len(touches), extreme),
		}, true
	}
	return Pattern{
		Name:        "double_bottom",
		Bias:        BiasBullish,
		Confidence:  doubleConfidence,
		Description: fmt.Sprintf("%d touches near %.4f support", len(touches), extreme),
	}, true
}

// detectHeadAndShoulders splits the highs into three equal windows and checks
// for a dominant middle peak flanked by two roughly symmetric shoulders.
func detectHeadAndShoulders(highs []float64) (Pattern, bool) {
	third := len(highs) / 3
	if third < 2 {
		return Pattern{}, false
	}

	left := maxOf(highs[:third])
	head := maxOf(highs[third : 2*third])
	right := maxOf(highs[2*third:])

	if head <= left || head <= right {
		return Pattern{}, false
	}
	tallest := math.Max(left, right)
	if tallest == 0 || math.Abs(left-right)/tallest >= shoulderTolerance {
		return Pattern{}, false
	}

	symmetry := 1 - math.Abs(left-right)/tallest
	prominence := (head - tallest) / head
	confidence := (symmetry + prominence) / 2 * 100

	return Pattern{
		Name:        "head_and_shoulders",
		Bias:        BiasBearish,
		Confidence:  confidence,
		Description: fmt.Sprintf("head %.4f above shoulders %.4f / %.4f", head, left, right),
	}, true
}

// detectTriangles classifies the trailing window as an ascending, descending
// or symmetrical triangle based on flat-line touches and the regression slope
// of the opposite side.
func detectTriangles(series []types.PricePoint) []Pattern {
	if len(series) < triangleWindow {
		return nil
	}

	highs := types.Highs(series)
	lows := types.Lows(series)
	highs = highs[len(highs)-triangleWindow:]
	lows = lows[len(lows)-triangleWindow:]

	maxHigh := maxOf(highs)
	minLow := minOf(lows)
	resistanceTouches := touchesNear(highs, maxHigh)
	supportTouches := touchesNear(lows, minLow)

	highSlope, _, _ := indicators.LinearRegression(highs)
	lowSlope, _, _ := indicators.LinearRegression(lows)

	var found []Pattern
	switch {
	case resistanceTouches >= 2 && lowSlope > 0:
		found = append(found, Pattern{
			Name:        "ascending_triangle",
			Bias:        BiasBullish,
			Confidence:  triangleConfidence(resistanceTouches),
			Description: fmt.Sprintf("flat resistance near %.4f with rising lows", maxHigh),
		})
	case supportTouches >= 2 && highSlope < 0:
		found = append(found, Pattern{
			Name:        "descending_triangle",
			Bias:        BiasBearish,
			Confidence:  triangleConfidence(supportTouches),
			Description: fmt.Sprintf("flat support near %.4f with falling highs", minLow),
		})
	case highSlope < 0 && lowSlope > 0:
		found = append(found, Pattern{
			Name:        "symmetrical_triangle",
			Bias:        BiasNeutral,
			Confidence:  triangleConfidence(resistanceTouches + supportTouches),
			Description: "converging highs and lows, breakout direction unclear",
		})
	}
	return found
}

// triangleConfidence scales with touch count, one fifth per touch, capped at 1.
func triangleConfidence(touches int) float64 {
	c := float64(touches) / 5
	if c > 1 {
		c = 1
	}
	return c * 100
}

func touchesNear(values []float64, reference float64) int {
	if reference == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if math.Abs(v-reference)/reference <= triangleTouchTolerance {
			count++
		}
	}
	return count
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
