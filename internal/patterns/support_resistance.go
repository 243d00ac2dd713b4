package patterns

import (
	"math"
	"sort"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

const (
	// DefaultTolerance is the relative band within which two prices belong
	// to the same cluster.
	DefaultTolerance = 0.02
	// DefaultMinTouches is the minimum cluster size for a level to survive.
	DefaultMinTouches = 3
)

// SupportResistance clusters the series closes into price bins and keeps the
// bins with enough touches. A surviving level above the last price is
// resistance, below it support. Strength is touches/10 capped at 1.
func SupportResistance(series []types.PricePoint, minTouches int, tolerance float64) []Level {
	if len(series) == 0 {
		return nil
	}
	if minTouches <= 0 {
		minTouches = DefaultMinTouches
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	type cluster struct {
		anchor float64
		sum    float64
		count  int
	}

	var clusters []*cluster
	for _, point := range series {
		placed := false
		for _, c := range clusters {
			if math.Abs(point.Price-c.anchor)/c.anchor <= tolerance {
				c.sum += point.Price
				c.count++
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, &cluster{anchor: point.Price, sum: point.Price, count: 1})
		}
	}

	current := series[len(series)-1].Price
	var levels []Level
	for _, c := range clusters {
		if c.count < minTouches {
			continue
		}
		level := Level{
			Price:    c.sum / float64(c.count),
			Touches:  c.count,
			Strength: math.Min(float64(c.count)/10, 1),
		}
		if level.Price > current {
			level.Kind = LevelResistance
		} else {
			level.Kind = LevelSupport
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Price < levels[j].Price })
	return levels
}
