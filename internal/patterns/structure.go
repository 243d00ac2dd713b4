package patterns

import "github.com/ducanhng/crypto-advisor/pkg/types"

// structureWindow is the number of trailing bars examined for swing structure.
const structureWindow = 10

// DetectStructure counts strictly rising and strictly falling consecutive
// pairs among the trailing highs and lows. Two higher highs plus two higher
// lows make an uptrend, the mirror image a downtrend, anything else
// consolidation. Confidence is ten points per matching pair, capped at 100.
func DetectStructure(series []types.PricePoint) MarketStructure {
	highs := types.Highs(series)
	lows := types.Lows(series)
	if len(highs) > structureWindow {
		highs = highs[len(highs)-structureWindow:]
		lows = lows[len(lows)-structureWindow:]
	}

	var hh, hl, lh, ll int
	for i := 1; i < len(highs); i++ {
		if highs[i] > highs[i-1] {
			hh++
		} else if highs[i] < highs[i-1] {
			lh++
		}
		if lows[i] > lows[i-1] {
			hl++
		} else if lows[i] < lows[i-1] {
			ll++
		}
	}

	structure := MarketStructure{
		HigherHighs: hh,
		HigherLows:  hl,
		LowerHighs:  lh,
		LowerLows:   ll,
	}

	switch {
	case hh >= 2 && hl >= 2:
		structure.State = StructureUptrend
		structure.Confidence = confidenceFromMatches(hh + hl)
	case lh >= 2 && ll >= 2:
		structure.State = StructureDowntrend
		structure.Confidence = confidenceFromMatches(lh + ll)
	default:
		structure.State = StructureConsolidation
		// The stronger of the two directional tallies, even though it
		// failed the trend bar.
		matches := hh + hl
		if lh+ll > matches {
			matches = lh + ll
		}
		structure.Confidence = confidenceFromMatches(matches)
	}
	return structure
}

func confidenceFromMatches(count int) float64 {
	c := float64(count) * 10
	if c > 100 {
		c = 100
	}
	return c
}
