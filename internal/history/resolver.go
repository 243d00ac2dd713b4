package history

import (
	"context"

	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/errors"
	"github.com/ducanhng/crypto-advisor/internal/synth"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// Source provides historical daily price points for a symbol. Implementations
// exist for the exchange API and for local CSV files.
type Source interface {
	Name() string
	History(ctx context.Context, symbol string, days int) ([]types.PricePoint, error)
}

// Result is a resolved history with its provenance.
type Result struct {
	Points    []types.PricePoint
	Source    string
	Synthetic bool
}

// Resolver tries real sources in priority order and falls back to the
// synthesizer when none yields enough points for a meaningful analysis.
// Scoring code never decides this itself; it only ever sees resolved series.
type Resolver struct {
	sources     []Source
	synthesizer *synth.Synthesizer
}

// NewResolver creates a resolver over the given sources, tried in order.
func NewResolver(synthesizer *synth.Synthesizer, sources ...Source) *Resolver {
	return &Resolver{sources: sources, synthesizer: synthesizer}
}

// Resolve returns the first source history with at least analysis.MinHistory
// points, otherwise a synthesized series anchored on the snapshot. It errors
// only when synthesis is impossible too (no positive snapshot price).
func (r *Resolver) Resolve(ctx context.Context, symbol string, snapshot types.Snapshot, days int) (*Result, error) {
	var lastErr error
	for _, src := range r.sources {
		points, err := src.History(ctx, symbol, days)
		if err != nil {
			lastErr = err
			continue
		}
		if len(points) >= analysis.MinHistory {
			return &Result{Points: points, Source: src.Name()}, nil
		}
	}

	if r.synthesizer != nil {
		if points := r.synthesizer.History(snapshot, days); points != nil {
			return &Result{Points: points, Source: "synthetic", Synthetic: true}, nil
		}
	}

	if lastErr != nil {
		return nil, errors.Wrap(lastErr, errors.CategoryData, "history", "resolve "+symbol)
	}
	return nil, errors.New(errors.CategoryData, "history", "resolve "+symbol, "no usable history and no snapshot to synthesize from")
}
