package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker reports whether the advisor is producing fresh analyses.
type HealthChecker struct {
	mu           sync.RWMutex
	lastAnalysis time.Time
	lastPrice    float64
	connected    bool
	errors       []string
}

type HealthStatus struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	LastAnalysis time.Time `json:"last_analysis"`
	LastPrice    float64   `json:"last_price"`
	IsConnected  bool      `json:"is_connected"`
	Uptime       string    `json:"uptime"`
	Errors       []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// MarkAnalysis records a successful analysis for freshness tracking.
func (h *HealthChecker) MarkAnalysis(price float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastAnalysis = time.Now()
	h.lastPrice = price
}

// SetConnected records whether the exchange is reachable.
func (h *HealthChecker) SetConnected(connected bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connected = connected
}

// AddError appends a fatal-ish error to the health report.
func (h *HealthChecker) AddError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if !h.connected {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if len(h.errors) > 0 {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:       status,
		Timestamp:    time.Now(),
		LastAnalysis: h.lastAnalysis,
		LastPrice:    h.lastPrice,
		IsConnected:  h.connected,
		Uptime:       time.Since(startTime).String(),
		Errors:       h.errors,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
