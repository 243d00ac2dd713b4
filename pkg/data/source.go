package data

import (
	"context"
	"fmt"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// CSVSource adapts the CSV provider to the history resolver's source
// contract, for offline runs against downloaded candles.
type CSVSource struct {
	provider Provider
	locator  FileLocator
	dataRoot string
}

// NewCSVSource creates a CSV-backed history source rooted at dataRoot.
func NewCSVSource(dataRoot string) *CSVSource {
	return &CSVSource{
		provider: NewCSVProvider(),
		locator:  NewDefaultFileLocator(),
		dataRoot: dataRoot,
	}
}

// Name identifies this source in resolved results.
func (s *CSVSource) Name() string {
	return "csv"
}

// History loads the symbol's file and returns the trailing days+1 points.
func (s *CSVSource) History(ctx context.Context, symbol string, days int) ([]types.PricePoint, error) {
	path := s.locator.FindDataFile(s.dataRoot, symbol)
	if path == "" {
		return nil, fmt.Errorf("no data file for %s under %s", symbol, s.dataRoot)
	}

	series, err := s.provider.LoadSeries(path)
	if err != nil {
		return nil, err
	}
	if err := s.provider.ValidateSeries(series); err != nil {
		return nil, err
	}

	if keep := days + 1; len(series) > keep {
		series = series[len(series)-keep:]
	}
	return series, nil
}
