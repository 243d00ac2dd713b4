package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExcelStyles holds the workbook's cell styles.
type ExcelStyles struct {
	HeaderStyle   int
	CurrencyStyle int
	PercentStyle  int
	BaseStyle     int
}

// ExcelReporter writes one workbook per analyzed symbol.
type ExcelReporter struct {
	outputDir string
}

// NewExcelReporter creates an Excel reporter writing under outputDir.
func NewExcelReporter(outputDir string) *ExcelReporter {
	return &ExcelReporter{outputDir: outputDir}
}

// Name identifies the reporter.
func (r *ExcelReporter) Name() string {
	return "excel"
}

// Write renders Summary, Breakdown, Signals and History sheets.
func (r *ExcelReporter) Write(report *Report) error {
	path := r.reportPath(report)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const breakdownSheet = "Breakdown"
	const signalsSheet = "Signals"
	const historySheet = "History"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	fx.NewSheet(breakdownSheet)
	fx.NewSheet(signalsSheet)
	fx.NewSheet(historySheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, report, styles); err != nil {
		return err
	}
	if err := r.writeBreakdownSheet(fx, breakdownSheet, report, styles); err != nil {
		return err
	}
	if err := r.writeSignalsSheet(fx, signalsSheet, report, styles); err != nil {
		return err
	}
	if err := r.writeHistorySheet(fx, historySheet, report, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) reportPath(report *Report) string {
	date := report.GeneratedAt
	if date.IsZero() {
		date = time.Now()
	}
	filename := fmt.Sprintf("%s_%s.xlsx", report.Symbol, date.Format("2006-01-02"))
	return filepath.Join(r.outputDir, report.Symbol, filename)
}

func (r *ExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header style - dark background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7, // currency with $ symbol
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 10, // percent with two decimals
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
	})
	return styles, err
}

func (r *ExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, report *Report, styles ExcelStyles) error {
	set := report.Indicators
	rec := report.Recommendation

	fx.SetCellValue(sheet, "A1", "Field")
	fx.SetCellValue(sheet, "B1", "Value")
	fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle)

	source := report.Source
	if report.Synthetic {
		source = "synthetic (approximate)"
	}

	rows := [][2]interface{}{
		{"Symbol", report.Symbol},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Price", set.Price},
		{"24h Change %", set.Change24h},
		{"Trend", string(set.Trend)},
		{"Market Structure", string(set.Structure.State)},
		{"RSI (14)", set.RSI},
		{"ADX", set.ADX},
		{"ATR", set.ATR},
		{"Volatility %", set.Volatility},
		{"Support", set.Support},
		{"Resistance", set.Resistance},
		{"Data Source", source},
		{"Engine", rec.Engine},
		{"Action", string(rec.Action)},
		{"Confidence", string(rec.Confidence)},
		{"Score", rec.Score},
	}
	if rec.KeyLevels != nil {
		rows = append(rows,
			[2]interface{}{"Stop Loss", rec.KeyLevels.StopLoss},
			[2]interface{}{"Take Profit", rec.KeyLevels.TakeProfit},
		)
	}

	for i, row := range rows {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row[0])
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row[1])
	}

	fx.SetColWidth(sheet, "A", "A", 20)
	fx.SetColWidth(sheet, "B", "B", 28)
	return nil
}

func (r *ExcelReporter) writeBreakdownSheet(fx *excelize.File, sheet string, report *Report, styles ExcelStyles) error {
	breakdown := report.Recommendation.Breakdown

	fx.SetCellValue(sheet, "A1", "Category")
	fx.SetCellValue(sheet, "B1", "Score")
	fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle)

	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for i, category := range categories {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), category)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), breakdown[category])
	}

	fx.SetColWidth(sheet, "A", "B", 18)
	return nil
}

func (r *ExcelReporter) writeSignalsSheet(fx *excelize.File, sheet string, report *Report, styles ExcelStyles) error {
	rec := report.Recommendation

	headers := []string{"Type", "Source", "Strength", "Reason"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		fx.SetCellValue(sheet, cell, h)
	}
	fx.SetCellStyle(sheet, "A1", "D1", styles.HeaderStyle)

	row := 2
	for _, s := range rec.Signals {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), "signal")
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Source)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.Strength)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.Reason)
		row++
	}
	for _, w := range rec.Warnings {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), "warning")
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), w.Source)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), w.Strength)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), w.Reason)
		row++
	}

	fx.SetColWidth(sheet, "D", "D", 50)
	return nil
}

func (r *ExcelReporter) writeHistorySheet(fx *excelize.File, sheet string, report *Report, styles ExcelStyles) error {
	headers := []string{"Date", "Close", "High", "Low", "Volume"}
	for i, h := range headers {
		fx.SetCellValue(sheet, fmt.Sprintf("%c1", 'A'+i), h)
	}
	fx.SetCellStyle(sheet, "A1", "E1", styles.HeaderStyle)

	for i, p := range report.History {
		row := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Time().Format("2006-01-02"))
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Price)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.High)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Low)
		fx.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Volume)
		fx.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), styles.CurrencyStyle)
	}

	fx.SetColWidth(sheet, "A", "A", 12)
	return nil
}
