package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ducanhng/crypto-advisor/cmd/common"
	"github.com/ducanhng/crypto-advisor/internal/config"
	"github.com/ducanhng/crypto-advisor/internal/exchange/bybit"
)

// download fetches daily candles from Bybit and writes them as per-symbol CSV
// files in the layout the advisor's CSV history source reads, so offline runs
// and the live pipeline see the same data.
func main() {
	var (
		symbols   = flag.String("symbols", "", "Comma-separated symbols to download (overrides ANALYSIS_SYMBOLS)")
		interval  = flag.String("interval", "D", "Kline interval (D, W, M or minutes: 60, 240, ...)")
		startDate = flag.String("start", "", "Start date (YYYY-MM-DD), default one year back")
		endDate   = flag.String("end", "", "End date (YYYY-MM-DD), default today")
		dataRoot  = flag.String("data-root", "data", "Root directory for CSV history files")
		envFile   = flag.String("env", "", "Environment file path (default .env when present)")
		version   = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		common.PrintVersion("Crypto Advisor Downloader")
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	symbolList := cfg.Analysis.Symbols
	if *symbols != "" {
		symbolList = common.ParseSymbols(*symbols)
	}
	if len(symbolList) == 0 {
		log.Fatal("No symbols to download")
	}

	end := time.Now()
	start := end.AddDate(-1, 0, 0)
	if *startDate != "" {
		if start, err = time.Parse("2006-01-02", *startDate); err != nil {
			log.Fatalf("Invalid start date: %v", err)
		}
	}
	if *endDate != "" {
		if end, err = time.Parse("2006-01-02", *endDate); err != nil {
			log.Fatalf("Invalid end date: %v", err)
		}
	}
	if !end.After(start) {
		log.Fatalf("End date %s is not after start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	client := bybit.NewClient(bybit.Config{
		APIKey:    cfg.Bybit.APIKey,
		APISecret: cfg.Bybit.APISecret,
		Category:  cfg.Bybit.Category,
		Testnet:   cfg.Bybit.Testnet,
	})

	fmt.Println("🚀 Bybit History Downloader")
	fmt.Printf("📊 Symbols: %s\n", strings.Join(symbolList, ", "))
	fmt.Printf("📅 Range: %s to %s (%s)\n",
		start.Format("2006-01-02"), end.Format("2006-01-02"), *interval)

	ctx := context.Background()
	failed := 0
	for _, symbol := range symbolList {
		if err := downloadSymbol(ctx, client, symbol, *interval, start, end, *dataRoot); err != nil {
			log.Printf("❌ %s: %v", symbol, err)
			failed++
		}
	}
	if failed == len(symbolList) {
		os.Exit(1)
	}
}

func downloadSymbol(ctx context.Context, client *bybit.Client, symbol, interval string, start, end time.Time, dataRoot string) error {
	fmt.Printf("\n🔄 Downloading %s...\n", symbol)

	klines, err := client.GetKlineWindow(ctx, symbol, interval, start, end)
	if err != nil {
		return err
	}
	if len(klines) == 0 {
		return fmt.Errorf("no candles returned")
	}

	path := outputPath(dataRoot, symbol, interval)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := writeCSV(klines, path); err != nil {
		return err
	}

	first := time.UnixMilli(klines[0].StartTime).Format("2006-01-02")
	last := time.UnixMilli(klines[len(klines)-1].StartTime).Format("2006-01-02")
	fmt.Printf("💾 %d candles (%s to %s) saved to %s\n", len(klines), first, last, path)
	return nil
}

// outputPath matches the layouts the CSV history source probes: daily candles
// live at <root>/<SYMBOL>.csv, other intervals under a per-symbol directory.
func outputPath(dataRoot, symbol, interval string) string {
	if interval == "D" {
		return filepath.Join(dataRoot, symbol+".csv")
	}
	return filepath.Join(dataRoot, symbol, "candles_"+interval+".csv")
}

func writeCSV(klines []bybit.Kline, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"timestamp", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}
	for _, k := range klines {
		record := []string{
			strconv.FormatInt(k.StartTime, 10),
			strconv.FormatFloat(k.Open, 'f', -1, 64),
			strconv.FormatFloat(k.High, 'f', -1, 64),
			strconv.FormatFloat(k.Low, 'f', -1, 64),
			strconv.FormatFloat(k.Close, 'f', -1, 64),
			strconv.FormatFloat(k.Volume, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
