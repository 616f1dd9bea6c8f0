package metrics

import (
	"net/http"
	"time"
)

// Metrics interface for dependency injection
type Metrics interface {
	RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration)
	RecordCheckCompleted(riskLevel string, duration time.Duration)
	RecordSourceFetch(source, status string)
	Handler() http.Handler
}

// NoOpMetrics provides a no-op implementation
type NoOpMetrics struct{}

func (m *NoOpMetrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
}
func (m *NoOpMetrics) RecordCheckCompleted(riskLevel string, duration time.Duration) {}
func (m *NoOpMetrics) RecordSourceFetch(source, status string)                       {}
func (m *NoOpMetrics) Handler() http.Handler                                         { return http.NotFoundHandler() }

// Global metrics instance
var globalMetrics Metrics = &NoOpMetrics{}

// Init initializes metrics (no-op for now, can be extended with Prometheus)
func Init() {
	// For now, keep using no-op metrics
	// In a full implementation, this would initialize Prometheus metrics
}

// Handler returns the metrics handler
func Handler() http.Handler {
	return globalMetrics.Handler()
}

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	globalMetrics.RecordHTTPRequest(method, endpoint, statusCode, duration)
}

// RecordCheckCompleted records the outcome of one background check
func RecordCheckCompleted(riskLevel string, duration time.Duration) {
	globalMetrics.RecordCheckCompleted(riskLevel, duration)
}

// RecordSourceFetch records the status of one evidence-source fetch
func RecordSourceFetch(source, status string) {
	globalMetrics.RecordSourceFetch(source, status)
}
