package reporting

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/patterns"
	"github.com/ducanhng/crypto-advisor/internal/strategy"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

func sampleReport() *Report {
	return &Report{
		Symbol:      "BTCUSDT",
		GeneratedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Snapshot:    types.Snapshot{Price: 50000, Change24h: 2.1},
		Source:      "bybit",
		History: []types.PricePoint{
			{Timestamp: 1700092800000, Price: 49000, High: 49500, Low: 48500, Volume: 1000},
			{Timestamp: 1700179200000, Price: 50000, High: 50500, Low: 48900, Volume: 1200},
		},
		Indicators: &analysis.IndicatorSet{
			Price: 50000, Change24h: 2.1, RSI: 58.2, ADX: 31, ATR: 800,
			Volatility: 45.5, Support: 48500, Resistance: 51200,
			Trend:     patterns.TrendBullish,
			Structure: patterns.MarketStructure{State: patterns.StructureUptrend},
		},
		Recommendation: &strategy.Recommendation{
			Engine:     "advanced",
			Action:     strategy.ActionBuy,
			Confidence: strategy.ConfidenceMedium,
			Score:      66.4,
			Breakdown:  map[string]float64{"trend": 75, "momentum": 55},
			Signals: []strategy.Signal{
				{Kind: strategy.SignalBuy, Source: "trend", Strength: 0.6, Reason: "bullish trend"},
			},
			Warnings: []strategy.Signal{
				{Kind: strategy.SignalSell, Source: "RSI", Strength: 0.3, Reason: "momentum cooling"},
			},
			KeyLevels: &strategy.KeyLevels{StopLoss: 48400, TakeProfit: 52400},
		},
	}
}

func TestConsoleReporter_RendersTables(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporterWithWriter(&buf)

	require.NoError(t, r.Write(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "MARKET ANALYSIS: BTCUSDT")
	assert.Contains(t, out, "RECOMMENDATION")
	assert.Contains(t, out, "BUY")
	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "trend")
	assert.Contains(t, out, "bullish trend")
	assert.Contains(t, out, "momentum cooling")
}

func TestConsoleReporter_FlagsSyntheticData(t *testing.T) {
	var buf bytes.Buffer
	report := sampleReport()
	report.Source = "synthetic"
	report.Synthetic = true

	require.NoError(t, NewConsoleReporterWithWriter(&buf).Write(report))

	assert.Contains(t, buf.String(), "approximate history")
}

func TestJSONReporter_WritesContract(t *testing.T) {
	dir := t.TempDir()
	r := NewJSONReporter(dir)
	report := sampleReport()

	require.NoError(t, r.Write(report))

	path := filepath.Join(dir, "BTCUSDT", "BTCUSDT_2024-03-15.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "BTCUSDT", decoded["symbol"])
	assert.Equal(t, "BUY", decoded["action"])
	assert.Equal(t, 66.4, decoded["score"])
	breakdown, ok := decoded["breakdown"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 75.0, breakdown["trend"])
}

func TestExcelReporter_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	r := NewExcelReporter(dir)
	report := sampleReport()

	require.NoError(t, r.Write(report))

	path := filepath.Join(dir, "BTCUSDT", "BTCUSDT_2024-03-15.xlsx")
	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.ElementsMatch(t, []string{"Summary", "Breakdown", "Signals", "History"}, fx.GetSheetList())

	symbol, err := fx.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", symbol)

	firstCategory, err := fx.GetCellValue("Breakdown", "A2")
	require.NoError(t, err)
	assert.Equal(t, "momentum", firstCategory)

	firstSignal, err := fx.GetCellValue("Signals", "A2")
	require.NoError(t, err)
	assert.Equal(t, "signal", firstSignal)

	closeCell, err := fx.GetCellValue("History", "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "50000", closeCell)
}
