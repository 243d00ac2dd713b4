package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Analysis metrics
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_analyses_total",
			Help: "Total number of analyses run",
		},
		[]string{"symbol", "engine", "action"},
	)

	analysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_analysis_duration_seconds",
			Help:    "Time spent computing one recommendation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	recommendationScore = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "advisor_recommendation_score",
			Help: "Latest recommendation score per symbol and engine",
		},
		[]string{"symbol", "engine"},
	)

	// Market data metrics
	currentPrice = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "advisor_current_price",
			Help: "Latest observed price per symbol",
		},
		[]string{"symbol"},
	)

	syntheticHistoryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_synthetic_history_total",
			Help: "Analyses that fell back to synthesized history",
		},
		[]string{"symbol"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_errors_total",
			Help: "Total number of errors by category",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(analysesTotal)
	prometheus.MustRegister(analysisDuration)
	prometheus.MustRegister(recommendationScore)
	prometheus.MustRegister(currentPrice)
	prometheus.MustRegister(syntheticHistoryTotal)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordAnalysis records one completed recommendation.
func RecordAnalysis(symbol, engine, action string, score float64, elapsed time.Duration) {
	analysesTotal.WithLabelValues(symbol, engine, action).Inc()
	analysisDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
	recommendationScore.WithLabelValues(symbol, engine).Set(score)
}

// RecordSyntheticFallback counts an analysis run on synthesized history.
func RecordSyntheticFallback(symbol string) {
	syntheticHistoryTotal.WithLabelValues(symbol).Inc()
}

// UpdatePrice updates the current price metric
func UpdatePrice(symbol string, price float64) {
	currentPrice.WithLabelValues(symbol).Set(price)
}

// RecordError records an error metric
func RecordError(category string) {
	errorsTotal.WithLabelValues(category).Inc()
}
