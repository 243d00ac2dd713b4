package reporting

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleReporter renders a report as rounded tables on a writer.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a console reporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterWithWriter creates a console reporter for a custom writer.
func NewConsoleReporterWithWriter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Name identifies the reporter.
func (r *ConsoleReporter) Name() string {
	return "console"
}

// Write renders the market overview, recommendation, breakdown and signals.
func (r *ConsoleReporter) Write(report *Report) error {
	r.writeOverview(report)
	r.writeRecommendation(report)
	r.writeBreakdown(report)
	r.writeSignals(report)
	return nil
}

func (r *ConsoleReporter) writeOverview(report *Report) {
	set := report.Indicators

	source := report.Source
	if report.Synthetic {
		source = "synthetic ⚠️ (approximate history)"
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("MARKET ANALYSIS: %s", report.Symbol))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"💰 Price", fmt.Sprintf("$%.4f", set.Price)},
		{"📊 24h Change", fmt.Sprintf("%+.2f%%", set.Change24h)},
		{"📈 Trend", string(set.Trend)},
		{"🏗  Structure", string(set.Structure.State)},
		{"⚡ RSI (14)", fmt.Sprintf("%.1f", set.RSI)},
		{"🌪  Volatility", fmt.Sprintf("%.1f%%", set.Volatility)},
		{"🛡  Support", fmt.Sprintf("$%.4f", set.Support)},
		{"🚧 Resistance", fmt.Sprintf("$%.4f", set.Resistance)},
		{"📡 Data Source", source},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 40, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

func (r *ConsoleReporter) writeRecommendation(report *Report) {
	rec := report.Recommendation

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("RECOMMENDATION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🎯 Action", string(rec.Action)},
		{"🎚  Confidence", string(rec.Confidence)},
		{"🧮 Score", fmt.Sprintf("%.2f", rec.Score)},
		{"⚙️  Engine", rec.Engine},
	})

	if rec.KeyLevels != nil {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"🛑 Stop Loss", fmt.Sprintf("$%.4f", rec.KeyLevels.StopLoss)},
			{"🏁 Take Profit", fmt.Sprintf("$%.4f", rec.KeyLevels.TakeProfit)},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 40, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

func (r *ConsoleReporter) writeBreakdown(report *Report) {
	breakdown := report.Recommendation.Breakdown
	if len(breakdown) == 0 {
		return
	}

	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("SCORE BREAKDOWN")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Category", "Score"})

	for _, category := range categories {
		t.AppendRow(table.Row{category, fmt.Sprintf("%.1f", breakdown[category])})
	}

	t.Render()
	fmt.Fprintln(r.out)
}

func (r *ConsoleReporter) writeSignals(report *Report) {
	rec := report.Recommendation
	for _, s := range rec.Signals {
		fmt.Fprintf(r.out, "✅ [%s] %s\n", s.Source, s.Reason)
	}
	for _, w := range rec.Warnings {
		fmt.Fprintf(r.out, "⚠️  [%s] %s\n", w.Source, w.Reason)
	}
	if len(rec.Signals)+len(rec.Warnings) > 0 {
		fmt.Fprintln(r.out)
	}
}
