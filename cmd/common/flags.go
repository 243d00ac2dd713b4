package common

import (
	"flag"
	"fmt"
	"strings"
)

// AdvisorFlags contains the flags shared by the advisor commands.
type AdvisorFlags struct {
	// Environment and data
	EnvFile  *string
	DataRoot *string

	// Analysis
	Symbols *string
	Days    *int
	Engine  *string

	// Output
	Report    *string
	OutputDir *string

	// Monitoring
	Serve *bool

	// Help and version
	Version *bool
}

// RegisterAdvisorFlags registers the advisor flags with the default flag set.
// Empty string / zero defaults mean "defer to the environment config".
func RegisterAdvisorFlags() *AdvisorFlags {
	return &AdvisorFlags{
		EnvFile:  flag.String("env", "", "Environment file path (default .env when present)"),
		DataRoot: flag.String("data-root", "data", "Root directory for CSV history files"),

		Symbols: flag.String("symbols", "", "Comma-separated symbols to analyze (overrides ANALYSIS_SYMBOLS)"),
		Days:    flag.Int("days", 0, "History window in days (overrides ANALYSIS_HISTORY_DAYS)"),
		Engine:  flag.String("engine", "", "Scoring engine: simple or advanced (overrides ANALYSIS_ENGINE)"),

		Report:    flag.String("report", "", "Report format: console, excel or json (overrides REPORT_FORMAT)"),
		OutputDir: flag.String("output", "", "Report output directory (overrides REPORT_OUTPUT_DIR)"),

		Serve: flag.Bool("serve", false, "Keep running and expose health/metrics endpoints"),

		Version: flag.Bool("version", false, "Show version information"),
	}
}

// ParseSymbols splits the -symbols override into a clean list.
func ParseSymbols(value string) []string {
	parts := strings.Split(value, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.ToUpper(strings.TrimSpace(p)); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// ValidateEngine checks the -engine override before it reaches config.
func ValidateEngine(engine string) error {
	switch engine {
	case "", "simple", "advanced":
		return nil
	}
	return fmt.Errorf("unknown engine %q, want simple or advanced", engine)
}
