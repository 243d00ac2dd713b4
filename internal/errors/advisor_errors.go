package errors

import (
	"errors"
	"fmt"
)

// Category classifies the errors surfaced at the tool's I/O boundary.
// Indicator math never errors for insufficient data; it degrades instead.
type Category string

const (
	// Fatal configuration or credential problems; not retryable.
	CategoryConfig      Category = "CONFIG"
	CategoryCredentials Category = "CREDENTIALS"

	// Boundary failures.
	CategoryValidation Category = "VALIDATION"
	CategoryData       Category = "DATA"
	CategoryExchange   Category = "EXCHANGE"
	CategoryReport     Category = "REPORT"

	// Transient failures worth retrying.
	CategoryNetwork   Category = "NETWORK"
	CategoryRateLimit Category = "RATE_LIMIT"
	CategoryTimeout   Category = "TIMEOUT"
)

// AdvisorError is a categorized error with component/operation context.
type AdvisorError struct {
	Category   Category
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *AdvisorError) Error() string {
	if e.Underlying != nil {
		if e.Message != "" {
			return fmt.Sprintf("[%s:%s] %s in %s: %v", e.Category, e.Component, e.Message, e.Operation, e.Underlying)
		}
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Component, e.Operation, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s in %s", e.Category, e.Component, e.Message, e.Operation)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *AdvisorError) Unwrap() error {
	return e.Underlying
}

// IsRetryable reports whether the failure is transient.
func (e *AdvisorError) IsRetryable() bool {
	switch e.Category {
	case CategoryNetwork, CategoryRateLimit, CategoryTimeout:
		return true
	}
	return false
}

// New creates a categorized error.
func New(category Category, component, operation, message string) *AdvisorError {
	return &AdvisorError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// Wrap attaches category and context to an existing error.
func Wrap(err error, category Category, component, operation string) *AdvisorError {
	return &AdvisorError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Underlying: err,
	}
}

// CategoryOf extracts the category of an error, or empty when it is not an
// AdvisorError.
func CategoryOf(err error) Category {
	var ae *AdvisorError
	if errors.As(err, &ae) {
		return ae.Category
	}
	return ""
}
