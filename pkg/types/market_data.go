package types

import (
	"fmt"
	"time"
)

// PricePoint is a single observation in a chronological price/volume series.
// High, Low and Volume are optional in raw feeds; Normalize fills the gaps.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"` // milliseconds since epoch
	Price     float64 `json:"price"`
	High      float64 `json:"high,omitempty"`
	Low       float64 `json:"low,omitempty"`
	Volume    float64 `json:"volume,omitempty"`
}

// Time returns the point's timestamp as time.Time.
func (p PricePoint) Time() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// Snapshot is the latest known market state for a coin.
type Snapshot struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"` // percent
	MarketCap float64 `json:"market_cap"`
	Volume24h float64 `json:"volume_24h"`
}

// Normalize returns a copy of the series with missing highs/lows defaulted to
// the close price. The input slice is never mutated.
func Normalize(series []PricePoint) []PricePoint {
	out := make([]PricePoint, len(series))
	copy(out, series)
	for i := range out {
		if out[i].High == 0 {
			out[i].High = out[i].Price
		}
		if out[i].Low == 0 {
			out[i].Low = out[i].Price
		}
	}
	return out
}

// Validate checks the hard invariants of a series: strictly positive prices
// and non-decreasing timestamps. Insufficient length is not an error here;
// indicators degrade on short series instead.
func Validate(series []PricePoint) error {
	var prev int64
	for i, p := range series {
		if p.Price <= 0 {
			return fmt.Errorf("invalid price %.8f at index %d: must be positive", p.Price, i)
		}
		if i > 0 && p.Timestamp < prev {
			return fmt.Errorf("unordered timestamps at index %d: %d < %d", i, p.Timestamp, prev)
		}
		prev = p.Timestamp
	}
	return nil
}

// Closes extracts the close prices of a series.
func Closes(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Price
	}
	return out
}

// Highs extracts the high prices of a series, falling back to close.
func Highs(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		if p.High != 0 {
			out[i] = p.High
		} else {
			out[i] = p.Price
		}
	}
	return out
}

// Lows extracts the low prices of a series, falling back to close.
func Lows(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		if p.Low != 0 {
			out[i] = p.Low
		} else {
			out[i] = p.Price
		}
	}
	return out
}

// Volumes extracts the volumes of a series.
func Volumes(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Volume
	}
	return out
}
