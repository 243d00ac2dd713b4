package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ducanhng/crypto-advisor/cmd/common"
	"github.com/ducanhng/crypto-advisor/internal/analysis"
	"github.com/ducanhng/crypto-advisor/internal/config"
	"github.com/ducanhng/crypto-advisor/internal/errors"
	"github.com/ducanhng/crypto-advisor/internal/exchange/bybit"
	"github.com/ducanhng/crypto-advisor/internal/history"
	"github.com/ducanhng/crypto-advisor/internal/logger"
	"github.com/ducanhng/crypto-advisor/internal/monitoring"
	"github.com/ducanhng/crypto-advisor/internal/notifications"
	"github.com/ducanhng/crypto-advisor/internal/strategy"
	"github.com/ducanhng/crypto-advisor/internal/synth"
	"github.com/ducanhng/crypto-advisor/pkg/data"
	"github.com/ducanhng/crypto-advisor/pkg/reporting"
	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// Advisor wires the history resolver, scoring engine and reporters for a
// batch of symbols.
type Advisor struct {
	config   *config.Config
	client   *bybit.Client
	resolver *history.Resolver
	engine   strategy.Engine
	reporter reporting.Reporter
	notifier notifications.Notifier
	health   *monitoring.HealthChecker
}

// NewAdvisor builds the advisor from resolved configuration.
func NewAdvisor(cfg *config.Config, dataRoot string) *Advisor {
	client := bybit.NewClient(bybit.Config{
		APIKey:    cfg.Bybit.APIKey,
		APISecret: cfg.Bybit.APISecret,
		Category:  cfg.Bybit.Category,
		Testnet:   cfg.Bybit.Testnet,
	})

	resolver := history.NewResolver(
		synth.NewSynthesizer(),
		bybit.NewSource(client),
		data.NewCSVSource(dataRoot),
	)

	var engine strategy.Engine
	if cfg.Analysis.Engine == "simple" {
		engine = strategy.NewSimpleEngine()
	} else {
		engine = strategy.NewAdvancedEngine()
	}

	var reporter reporting.Reporter
	switch cfg.Report.Format {
	case "excel":
		reporter = reporting.NewExcelReporter(cfg.Report.OutputDir)
	case "json":
		reporter = reporting.NewJSONReporter(cfg.Report.OutputDir)
	default:
		reporter = reporting.NewConsoleReporter()
	}

	var notifier notifications.Notifier
	if cfg.Notifications.TelegramToken != "" && cfg.Notifications.TelegramChatID != "" {
		notifier = notifications.NewTelegramNotifier(
			cfg.Notifications.TelegramToken, cfg.Notifications.TelegramChatID)
	}

	return &Advisor{
		config:   cfg,
		client:   client,
		resolver: resolver,
		engine:   engine,
		reporter: reporter,
		notifier: notifier,
		health:   monitoring.NewHealthChecker(),
	}
}

// Run analyzes every configured symbol. Symbols are independent, so they fan
// out to one goroutine each; results only meet in the error count.
func (a *Advisor) Run(ctx context.Context) error {
	symbols := a.config.Analysis.Symbols
	log.Printf("Analyzing %d symbol(s) with the %s engine", len(symbols), a.engine.Name())

	var wg sync.WaitGroup
	failures := make(chan string, len(symbols))

	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			if err := a.analyzeSymbol(ctx, symbol); err != nil {
				log.Printf("❌ %s: %v", symbol, err)
				monitoring.RecordError(string(errors.CategoryOf(err)))
				failures <- symbol
			}
		}(symbol)
	}
	wg.Wait()
	close(failures)

	failed := 0
	for range failures {
		failed++
	}
	if failed == len(symbols) {
		return fmt.Errorf("all %d symbol(s) failed", failed)
	}
	if failed > 0 {
		log.Printf("⚠️  %d of %d symbol(s) failed", failed, len(symbols))
	}
	return nil
}

// analyzeSymbol runs the full pipeline for one symbol: snapshot, history,
// indicators, recommendation, report.
func (a *Advisor) analyzeSymbol(ctx context.Context, symbol string) error {
	started := time.Now()

	symLog, err := logger.NewLogger(symbol, "logs")
	if err != nil {
		return err
	}
	defer symLog.Close()

	snapshot, err := a.client.GetSnapshot(ctx, symbol)
	if err != nil {
		a.health.SetConnected(false)
		symLog.LogError("snapshot fetch", err)
		// A dead ticker endpoint is not fatal when local history exists:
		// the snapshot is rebuilt from the resolved series below.
	} else {
		a.health.SetConnected(true)
	}

	resolved, err := a.resolver.Resolve(ctx, symbol, snapshot, a.config.Analysis.HistoryDays)
	if err != nil {
		return err
	}
	if snapshot.Price == 0 {
		snapshot = snapshotFromSeries(resolved.Points)
	}
	symLog.Info("resolved %d points from %s", len(resolved.Points), resolved.Source)

	set, err := analysis.ComputeIndicators(resolved.Points, snapshot, analysis.Options{Synthetic: resolved.Synthetic})
	if err != nil {
		return err
	}

	rec := a.engine.Recommend(set)

	monitoring.UpdatePrice(symbol, set.Price)
	monitoring.RecordAnalysis(symbol, rec.Engine, string(rec.Action), rec.Score, time.Since(started))
	if resolved.Synthetic {
		monitoring.RecordSyntheticFallback(symbol)
	}
	a.health.MarkAnalysis(set.Price)

	symLog.LogRecommendation(rec.Engine, string(rec.Action), string(rec.Confidence),
		rec.Score, set.Price, len(rec.Signals), len(rec.Warnings), resolved.Synthetic)

	if a.notifier != nil && (rec.Action == strategy.ActionStrongBuy || rec.Action == strategy.ActionStrongSell) {
		msg := notifications.RecommendationAlert(symbol, string(rec.Action), string(rec.Confidence), set.Price, rec.Score)
		if err := a.notifier.SendAlert(notifications.LevelWarning, msg); err != nil {
			symLog.Warning("notification failed: %v", err)
		}
	}

	report := &reporting.Report{
		Symbol:         symbol,
		GeneratedAt:    time.Now(),
		Snapshot:       snapshot,
		Source:         resolved.Source,
		Synthetic:      resolved.Synthetic,
		History:        resolved.Points,
		Indicators:     set,
		Recommendation: rec,
	}
	return a.reporter.Write(report)
}

// snapshotFromSeries derives price and 24h change from the last two closes
// when the ticker endpoint is unavailable.
func snapshotFromSeries(series []types.PricePoint) types.Snapshot {
	if len(series) == 0 {
		return types.Snapshot{}
	}
	last := series[len(series)-1]
	snapshot := types.Snapshot{Price: last.Price, Volume24h: last.Volume}
	if len(series) > 1 {
		prev := series[len(series)-2].Price
		if prev > 0 {
			snapshot.Change24h = (last.Price - prev) / prev * 100
		}
	}
	return snapshot
}

func main() {
	flags := common.RegisterAdvisorFlags()
	flag.Parse()

	if *flags.Version {
		common.PrintVersion("Crypto Advisor")
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := common.ValidateEngine(*flags.Engine); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	cfg, err := config.Load(*flags.EnvFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	applyOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting Crypto Advisor in %s mode", cfg.Environment)

	advisor := NewAdvisor(cfg, *flags.DataRoot)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *flags.Serve {
		go setupMonitoringServers(cfg, advisor.health)
	}

	if err := advisor.Run(ctx); err != nil {
		log.Printf("Run failed: %v", err)
		os.Exit(1)
	}

	if !*flags.Serve {
		return
	}

	// Keep serving health/metrics until interrupted, re-analyzing daily.
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			if err := advisor.Run(ctx); err != nil {
				log.Printf("Scheduled run failed: %v", err)
				advisor.health.AddError(err.Error())
			}
		}
	}
}

func applyOverrides(cfg *config.Config, flags *common.AdvisorFlags) {
	if *flags.Symbols != "" {
		cfg.Analysis.Symbols = common.ParseSymbols(*flags.Symbols)
	}
	if *flags.Days > 0 {
		cfg.Analysis.HistoryDays = *flags.Days
	}
	if *flags.Engine != "" {
		cfg.Analysis.Engine = *flags.Engine
	}
	if *flags.Report != "" {
		cfg.Report.Format = *flags.Report
	}
	if *flags.OutputDir != "" {
		cfg.Report.OutputDir = *flags.OutputDir
	}
}

func setupMonitoringServers(cfg *config.Config, healthChecker *monitoring.HealthChecker) {
	healthMux := http.NewServeMux()
	healthMux.Handle("/health", healthChecker)

	go func() {
		log.Printf("Starting health server on port %d", cfg.Monitoring.HealthPort)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Monitoring.HealthPort), healthMux); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()

	go func() {
		log.Printf("Starting Prometheus server on port %d", cfg.Monitoring.PrometheusPort)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort), monitoring.NewMetricsHandler()); err != nil {
			log.Printf("Prometheus server error: %v", err)
		}
	}()
}
