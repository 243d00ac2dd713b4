package bybit

import (
	"fmt"
	"net/http"

	"github.com/ducanhng/crypto-advisor/internal/errors"
)

// APIError represents a Bybit API error with its retCode.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Bybit API error %d: %s", e.Code, e.Message)
}

// Error codes relevant to market-data reads.
const (
	ErrCodeInvalidAPIKey     = 10003
	ErrCodeInvalidSignature  = 10004
	ErrCodeInvalidTimestamp  = 10005
	ErrCodeRateLimitExceeded = 10006
	ErrCodeSymbolNotFound    = 110009
)

// IsRetryableError determines if an error should be retried.
func IsRetryableError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		switch apiErr.Code {
		case ErrCodeRateLimitExceeded,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

// IsAuthenticationError checks if the error is related to authentication.
func IsAuthenticationError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		switch apiErr.Code {
		case ErrCodeInvalidAPIKey, ErrCodeInvalidSignature, ErrCodeInvalidTimestamp:
			return true
		}
	}
	return false
}

// ParseAPIError extracts error information from the API response.
func ParseAPIError(retCode int, retMsg string) error {
	if retCode == 0 {
		return nil
	}
	return &APIError{Code: retCode, Message: retMsg}
}

// categorize maps an exchange failure into the advisor's error taxonomy.
func categorize(err error, operation string) error {
	if err == nil {
		return nil
	}
	category := errors.CategoryExchange
	switch {
	case IsAuthenticationError(err):
		category = errors.CategoryCredentials
	case isRateLimited(err):
		category = errors.CategoryRateLimit
	case IsRetryableError(err):
		category = errors.CategoryNetwork
	}
	return errors.Wrap(err, category, "bybit", operation)
}

func isRateLimited(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == ErrCodeRateLimitExceeded
}
