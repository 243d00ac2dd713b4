package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the environment-driven configuration for the advisor CLI.
type Config struct {
	Environment string
	LogLevel    string

	Bybit struct {
		APIKey    string
		APISecret string
		Category  string
		Testnet   bool
	}

	Analysis struct {
		Symbols     []string
		HistoryDays int
		Engine      string // "simple" or "advanced"
	}

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}

	Report struct {
		Format    string // "console", "excel", "json"
		OutputDir string
	}

	Notifications struct {
		TelegramToken  string
		TelegramChatID string
	}
}

// Load reads configuration from the environment. When envFile is non-empty
// it is loaded first; a missing default .env is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	cfg.Bybit.APIKey = getEnv("BYBIT_API_KEY", "")
	cfg.Bybit.APISecret = getEnv("BYBIT_API_SECRET", "")
	cfg.Bybit.Category = getEnv("BYBIT_CATEGORY", "spot")
	cfg.Bybit.Testnet = getEnvBool("BYBIT_TESTNET", false)

	cfg.Analysis.Symbols = parseSymbolList(getEnv("ANALYSIS_SYMBOLS", "BTCUSDT"))
	cfg.Analysis.HistoryDays = getEnvInt("ANALYSIS_HISTORY_DAYS", 30)
	cfg.Analysis.Engine = getEnv("ANALYSIS_ENGINE", "advanced")

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	cfg.Report.Format = getEnv("REPORT_FORMAT", "console")
	cfg.Report.OutputDir = getEnv("REPORT_OUTPUT_DIR", "results")

	cfg.Notifications.TelegramToken = getEnv("TELEGRAM_TOKEN", "")
	cfg.Notifications.TelegramChatID = getEnv("TELEGRAM_CHAT_ID", "")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants a run cannot recover from.
func (c *Config) Validate() error {
	if len(c.Analysis.Symbols) == 0 {
		return fmt.Errorf("no analysis symbols configured")
	}
	if c.Analysis.HistoryDays < 1 {
		return fmt.Errorf("ANALYSIS_HISTORY_DAYS must be at least 1, got %d", c.Analysis.HistoryDays)
	}
	switch c.Analysis.Engine {
	case "simple", "advanced":
	default:
		return fmt.Errorf("unknown ANALYSIS_ENGINE %q, want simple or advanced", c.Analysis.Engine)
	}
	switch c.Report.Format {
	case "console", "excel", "json":
	default:
		return fmt.Errorf("unknown REPORT_FORMAT %q, want console, excel or json", c.Report.Format)
	}
	return nil
}

func parseSymbolList(value string) []string {
	parts := strings.Split(value, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.ToUpper(strings.TrimSpace(p)); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
