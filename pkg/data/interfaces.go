package data

import (
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// Provider loads a historical price series from a local source.
type Provider interface {
	// LoadSeries loads the series from the specified source
	LoadSeries(source string) ([]types.PricePoint, error)

	// ValidateSeries validates the integrity of the loaded series
	ValidateSeries(series []types.PricePoint) error

	// GetName returns the name of the provider
	GetName() string
}

// FileLocator finds the data file for a symbol under a data root.
type FileLocator interface {
	FindDataFile(dataRoot, symbol string) string
}

// CSVColumnMapping defines the column positions for different CSV formats
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// DefaultCSVFormat matches the exchange download layout:
// timestamp,open,high,low,close,volume
var DefaultCSVFormat = CSVColumnMapping{
	TimestampCol: 0,
	OpenCol:      1,
	HighCol:      2,
	LowCol:       3,
	CloseCol:     4,
	VolumeCol:    5,
	MinColumns:   6,
	DateFormat:   "2006-01-02 15:04:05",
}
