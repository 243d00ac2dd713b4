package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesUnderlying(t *testing.T) {
	base := stderrors.New("connection refused")
	err := Wrap(base, CategoryNetwork, "bybit", "get_klines")

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "NETWORK")
	assert.Contains(t, err.Error(), "get_klines")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, New(CategoryNetwork, "bybit", "fetch", "timeout").IsRetryable())
	assert.True(t, New(CategoryRateLimit, "bybit", "fetch", "throttled").IsRetryable())
	assert.False(t, New(CategoryValidation, "analysis", "compute", "bad series").IsRetryable())
	assert.False(t, New(CategoryConfig, "config", "load", "missing key").IsRetryable())
}

func TestCategoryOf(t *testing.T) {
	err := New(CategoryData, "csv", "load", "no rows")

	assert.Equal(t, CategoryData, CategoryOf(err))
	assert.Equal(t, Category(""), CategoryOf(stderrors.New("plain")))
}
