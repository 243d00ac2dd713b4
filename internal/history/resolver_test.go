package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanhng/crypto-advisor/internal/errors"
	"github.com/ducanhng/crypto-advisor/internal/synth"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

type stubSource struct {
	name   string
	points []types.PricePoint
	err    error
	calls  int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) History(ctx context.Context, symbol string, days int) ([]types.PricePoint, error) {
	s.calls++
	return s.points, s.err
}

func seriesOf(n int) []types.PricePoint {
	out := make([]types.PricePoint, n)
	for i := range out {
		out[i] = types.PricePoint{Timestamp: int64(i), Price: 100 + float64(i)}
	}
	return out
}

func TestResolver_FirstSourceWins(t *testing.T) {
	first := &stubSource{name: "exchange", points: seriesOf(30)}
	second := &stubSource{name: "csv", points: seriesOf(30)}
	r := NewResolver(synth.NewSynthesizerWithSeed(1), first, second)

	res, err := r.Resolve(context.Background(), "BTCUSDT", types.Snapshot{Price: 100}, 30)

	require.NoError(t, err)
	assert.Equal(t, "exchange", res.Source)
	assert.False(t, res.Synthetic)
	assert.Len(t, res.Points, 30)
	assert.Equal(t, 0, second.calls)
}

func TestResolver_FailingSourceFallsThrough(t *testing.T) {
	first := &stubSource{name: "exchange", err: fmt.Errorf("connection refused")}
	second := &stubSource{name: "csv", points: seriesOf(25)}
	r := NewResolver(synth.NewSynthesizerWithSeed(1), first, second)

	res, err := r.Resolve(context.Background(), "BTCUSDT", types.Snapshot{Price: 100}, 30)

	require.NoError(t, err)
	assert.Equal(t, "csv", res.Source)
	assert.False(t, res.Synthetic)
}

func TestResolver_ShortHistorySynthesizes(t *testing.T) {
	short := &stubSource{name: "exchange", points: seriesOf(5)}
	r := NewResolver(synth.NewSynthesizerWithSeed(1), short)

	res, err := r.Resolve(context.Background(), "NEWCOIN", types.Snapshot{Price: 2.5, Change24h: 40}, 30)

	require.NoError(t, err)
	assert.True(t, res.Synthetic)
	assert.Equal(t, "synthetic", res.Source)
	assert.Len(t, res.Points, 31)
	assert.Equal(t, 2.5, res.Points[len(res.Points)-1].Price)
}

func TestResolver_NoSourcesStillSynthesizes(t *testing.T) {
	r := NewResolver(synth.NewSynthesizerWithSeed(1))

	res, err := r.Resolve(context.Background(), "BTCUSDT", types.Snapshot{Price: 100}, 10)

	require.NoError(t, err)
	assert.True(t, res.Synthetic)
}

func TestResolver_ErrorWhenNothingUsable(t *testing.T) {
	failing := &stubSource{name: "exchange", err: fmt.Errorf("boom")}
	r := NewResolver(synth.NewSynthesizerWithSeed(1), failing)

	_, err := r.Resolve(context.Background(), "BTCUSDT", types.Snapshot{}, 10)

	require.Error(t, err)
	assert.Equal(t, errors.CategoryData, errors.CategoryOf(err))
}
