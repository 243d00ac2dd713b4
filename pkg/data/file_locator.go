package data

import (
	"os"
	"path/filepath"
)

// DefaultFileLocator finds per-symbol CSV files under a data root.
type DefaultFileLocator struct{}

// NewDefaultFileLocator creates a new default file locator
func NewDefaultFileLocator() *DefaultFileLocator {
	return &DefaultFileLocator{}
}

// FindDataFile tries the common layouts for a symbol's daily candles and
// returns the first file that exists, or "" when none do.
func (f *DefaultFileLocator) FindDataFile(dataRoot, symbol string) string {
	candidates := []string{
		filepath.Join(dataRoot, symbol+".csv"),
		filepath.Join(dataRoot, symbol+"_1d.csv"),
		filepath.Join(dataRoot, symbol, "candles_D.csv"),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
