package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

func TestSnapshotFromSeries(t *testing.T) {
	series := []types.PricePoint{
		{Timestamp: 1, Price: 100, Volume: 500},
		{Timestamp: 2, Price: 105, Volume: 800},
	}

	snapshot := snapshotFromSeries(series)

	assert.Equal(t, 105.0, snapshot.Price)
	assert.Equal(t, 800.0, snapshot.Volume24h)
	assert.InDelta(t, 5.0, snapshot.Change24h, 1e-9)
}

func TestSnapshotFromSeriesSinglePoint(t *testing.T) {
	series := []types.PricePoint{{Timestamp: 1, Price: 42, Volume: 10}}

	snapshot := snapshotFromSeries(series)

	assert.Equal(t, 42.0, snapshot.Price)
	assert.Zero(t, snapshot.Change24h)
}

func TestSnapshotFromSeriesEmpty(t *testing.T) {
	assert.Equal(t, types.Snapshot{}, snapshotFromSeries(nil))
}
