package synth

import (
	"math/rand"
	"time"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

const (
	// Synthesized prices never leave this band around the current price.
	minPriceFactor = 0.1
	maxPriceFactor = 3.0

	maxTrendStrength   = 0.03
	minDailyVolatility = 0.02

	dayMillis = int64(24 * 60 * 60 * 1000)
)

// Synthesizer produces a plausible daily price history from a single 24h
// snapshot, for coins where real history is unavailable or too short. The
// output is approximate by construction; consumers must treat indicators
// computed on it as lower-confidence.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a time-seeded synthesizer.
func NewSynthesizer() *Synthesizer {
	return NewSynthesizerWithSeed(time.Now().UnixNano())
}

// NewSynthesizerWithSeed creates a synthesizer with a fixed seed for
// reproducible output in tests.
func NewSynthesizerWithSeed(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// History walks backward day by day from the snapshot price, applying a
// drift derived from the 24h change plus random noise. It returns days+1
// points in chronological order; the last point is anchored to exactly the
// snapshot price. Returns nil when the snapshot has no positive price.
func (s *Synthesizer) History(snapshot types.Snapshot, days int) []types.PricePoint {
	if snapshot.Price <= 0 {
		return nil
	}
	if days < 0 {
		days = 0
	}

	direction := 0.0
	if snapshot.Change24h > 0 {
		direction = 1
	} else if snapshot.Change24h < 0 {
		direction = -1
	}

	absChange := snapshot.Change24h
	if absChange < 0 {
		absChange = -absChange
	}
	trendStrength := absChange / 100
	if trendStrength > maxTrendStrength {
		trendStrength = maxTrendStrength
	}
	dailyVolatility := absChange / 100
	if dailyVolatility < minDailyVolatility {
		dailyVolatility = minDailyVolatility
	}

	closes := make([]float64, days+1)
	closes[days] = snapshot.Price
	for i := days - 1; i >= 0; i-- {
		trendComponent := direction * trendStrength * s.rng.Float64() * 0.5
		randomComponent := (s.rng.Float64() - 0.5) * dailyVolatility * 2
		price := closes[i+1] * (1 - trendComponent - randomComponent)
		closes[i] = clampPrice(price, snapshot.Price)
	}

	now := time.Now().UnixMilli()
	series := make([]types.PricePoint, days+1)
	for i, close := range closes {
		point := types.PricePoint{
			Timestamp: now - int64(days-i)*dayMillis,
			Price:     close,
			High:      close * (1 + 0.02 + s.rng.Float64()*0.01),
			Low:       close * (1 - 0.02 - s.rng.Float64()*0.01),
			Volume:    snapshot.Volume24h * (0.5 + s.rng.Float64()),
		}
		series[i] = point
	}
	return series
}

func clampPrice(price, current float64) float64 {
	if price < current*minPriceFactor {
		return current * minPriceFactor
	}
	if price > current*maxPriceFactor {
		return current * maxPriceFactor
	}
	return price
}
