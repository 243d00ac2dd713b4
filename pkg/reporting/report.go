package reporting

import (
	"time"

	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/strategy"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// Report is one symbol's completed analysis, ready for presentation. It is
// plain data over the core's value objects; reporters never recompute.
type Report struct {
	Symbol      string
	GeneratedAt time.Time

	Snapshot  types.Snapshot
	Source    string // "bybit", "csv" or "synthetic"
	Synthetic bool
	History   []types.PricePoint

	Indicators     *analysis.IndicatorSet
	Recommendation *strategy.Recommendation
}

// Reporter renders a report to its output medium.
type Reporter interface {
	Name() string
	Write(report *Report) error
}
