package reporting

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir returns the per-symbol output directory under root.
func DefaultOutputDir(root, symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		s = "UNKNOWN"
	}
	if root == "" {
		root = "results"
	}
	return filepath.Join(root, s)
}

// EnsureDirectoryExists creates the parent directory of path if needed.
func EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
