package notifications

// Alert levels accepted by Notifier implementations.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelSuccess = "success"
)

// Notifier delivers advisor alerts to an external channel.
type Notifier interface {
	SendAlert(level, message string) error
}
