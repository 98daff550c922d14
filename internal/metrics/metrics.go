package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names exposed on /metrics.
const (
	RequestsTotalName   = "http_requests_total"
	RequestDurationName = "http_request_duration_seconds"
)

// HTTPMetrics holds the request counter and latency histogram, registered on
// a dedicated registry so that each server (and each test) starts from zero.
type HTTPMetrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// Options configures NewHTTPMetrics.
type Options struct {
	// IncludeRuntime also registers the Go runtime and process collectors.
	IncludeRuntime bool
}

// NewHTTPMetrics creates the collectors and registers them on a new registry.
func NewHTTPMetrics(opts Options) *HTTPMetrics {
	m := &HTTPMetrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RequestsTotalName,
			Help: "Total HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    RequestDurationName,
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}

	m.registry.MustRegister(m.requestsTotal, m.requestDuration)

	if opts.IncludeRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

// ObserveRequest increments the request counter for (method, path, status)
// and records duration in the histogram for (method, path).
func (m *HTTPMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RequestsTotal returns the request counter vector.
func (m *HTTPMetrics) RequestsTotal() *prometheus.CounterVec {
	return m.requestsTotal
}

// RequestDuration returns the request duration histogram vector.
func (m *HTTPMetrics) RequestDuration() *prometheus.HistogramVec {
	return m.requestDuration
}

// Handler renders every registered collector in the Prometheus text
// exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}
