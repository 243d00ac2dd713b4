package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"BTCUSDT"}, cfg.Analysis.Symbols)
	assert.Equal(t, 30, cfg.Analysis.HistoryDays)
	assert.Equal(t, "advanced", cfg.Analysis.Engine)
	assert.Equal(t, "console", cfg.Report.Format)
	assert.Equal(t, "spot", cfg.Bybit.Category)
	assert.False(t, cfg.Bybit.Testnet)
}

func TestLoad_SymbolListParsing(t *testing.T) {
	t.Setenv("ANALYSIS_SYMBOLS", " btcusdt, ETHUSDT ,,solusdt ")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}, cfg.Analysis.Symbols)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ANALYSIS_ENGINE", "simple")
	t.Setenv("ANALYSIS_HISTORY_DAYS", "90")
	t.Setenv("BYBIT_TESTNET", "true")
	t.Setenv("REPORT_FORMAT", "excel")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "simple", cfg.Analysis.Engine)
	assert.Equal(t, 90, cfg.Analysis.HistoryDays)
	assert.True(t, cfg.Bybit.Testnet)
	assert.Equal(t, "excel", cfg.Report.Format)
}

func TestLoad_TelegramSettings(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Notifications.TelegramToken)
	assert.Equal(t, "-100200300", cfg.Notifications.TelegramChatID)
}

func TestLoad_RejectsUnknownEngine(t *testing.T) {
	t.Setenv("ANALYSIS_ENGINE", "quantum")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_RejectsBadHistoryDays(t *testing.T) {
	t.Setenv("ANALYSIS_HISTORY_DAYS", "0")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_MissingEnvFileErrors(t *testing.T) {
	_, err := Load("does-not-exist.env")

	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("HELPER_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("HELPER_INT", 7))

	t.Setenv("HELPER_FLOAT", "2.5")
	assert.Equal(t, 2.5, getEnvFloat("HELPER_FLOAT", 1.0))

	t.Setenv("HELPER_BOOL", "1")
	assert.True(t, getEnvBool("HELPER_BOOL", false))
}
