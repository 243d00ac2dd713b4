package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// JSONReporter writes one machine-readable report per symbol.
type JSONReporter struct {
	outputDir string
}

// NewJSONReporter creates a JSON reporter writing under outputDir.
func NewJSONReporter(outputDir string) *JSONReporter {
	return &JSONReporter{outputDir: outputDir}
}

// Name identifies the reporter.
func (r *JSONReporter) Name() string {
	return "json"
}

// jsonReport is the stable wire shape; history is omitted to keep the files
// small, the breakdown and key levels are the contract consumers read.
type jsonReport struct {
	Symbol      string      `json:"symbol"`
	GeneratedAt time.Time   `json:"generated_at"`
	Source      string      `json:"source"`
	Synthetic   bool        `json:"synthetic"`
	Indicators  interface{} `json:"indicators"`
	Action      string      `json:"action"`
	Confidence  string      `json:"confidence"`
	Score       float64     `json:"score"`
	Engine      string      `json:"engine"`
	Breakdown   interface{} `json:"breakdown,omitempty"`
	Signals     interface{} `json:"signals,omitempty"`
	Warnings    interface{} `json:"warnings,omitempty"`
	KeyLevels   interface{} `json:"key_levels,omitempty"`
}

// Write marshals the report with indentation and writes it to disk.
func (r *JSONReporter) Write(report *Report) error {
	rec := report.Recommendation
	payload := jsonReport{
		Symbol:      report.Symbol,
		GeneratedAt: report.GeneratedAt,
		Source:      report.Source,
		Synthetic:   report.Synthetic,
		Indicators:  report.Indicators,
		Action:      string(rec.Action),
		Confidence:  string(rec.Confidence),
		Score:       rec.Score,
		Engine:      rec.Engine,
		Breakdown:   rec.Breakdown,
		Signals:     rec.Signals,
		Warnings:    rec.Warnings,
		KeyLevels:   rec.KeyLevels,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	path := r.reportPath(report)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (r *JSONReporter) reportPath(report *Report) string {
	date := report.GeneratedAt
	if date.IsZero() {
		date = time.Now()
	}
	filename := fmt.Sprintf("%s_%s.json", report.Symbol, date.Format("2006-01-02"))
	return filepath.Join(r.outputDir, report.Symbol, filename)
}
