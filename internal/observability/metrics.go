package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
)

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// DefaultMetricsConfig returns default metrics configuration
func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Enabled:   true,
		Namespace: "referme",
		Path:      "/metrics",
	}
}

// MetricsProvider owns the Prometheus registry and the service metrics.
// A disabled provider accepts every call and records nothing.
type MetricsProvider struct {
	config   *MetricsConfig
	logger   *zap.Logger
	registry *prometheus.Registry
	handler  http.Handler

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	contentChanges      *prometheus.CounterVec
	snapshotRuns        *prometheus.CounterVec
	activeConnections   *prometheus.GaugeVec
}

var _ service.ChangePublisher = (*MetricsProvider)(nil)

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(config *MetricsConfig, logger *zap.Logger) *MetricsProvider {
	mp := &MetricsProvider{config: config, logger: logger}
	if !config.Enabled {
		return mp
	}

	ns := config.Namespace
	mp.registry = prometheus.NewRegistry()
	mp.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})
	mp.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	mp.contentChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      "content_changes_total",
		Help:      "Content writes by domain and action",
	}, []string{"domain", "action"})
	mp.snapshotRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      "snapshot_runs_total",
		Help:      "Content snapshot runs by result",
	}, []string{"result"})
	mp.activeConnections = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "active_connections",
		Help:      "Number of open long-lived connections",
	}, []string{"type"})

	mp.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		mp.httpRequestsTotal,
		mp.httpRequestDuration,
		mp.contentChanges,
		mp.snapshotRuns,
		mp.activeConnections,
	)
	mp.handler = promhttp.HandlerFor(mp.registry, promhttp.HandlerOpts{})

	logger.Info("prometheus metrics initialized", zap.String("path", config.Path))
	return mp
}

// Enabled reports whether metrics are collected
func (mp *MetricsProvider) Enabled() bool {
	return mp.registry != nil
}

// RecordHTTPRequest records an HTTP request metric
func (mp *MetricsProvider) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	if mp.httpRequestsTotal == nil {
		return
	}
	mp.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	mp.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Publish counts a content change
func (mp *MetricsProvider) Publish(event service.ChangeEvent) {
	if mp.contentChanges == nil {
		return
	}
	mp.contentChanges.WithLabelValues(event.Domain, event.Action).Inc()
}

// RecordSnapshot records the outcome of a snapshot run
func (mp *MetricsProvider) RecordSnapshot(success bool) {
	if mp.snapshotRuns == nil {
		return
	}
	result := "ok"
	if !success {
		result = "error"
	}
	mp.snapshotRuns.WithLabelValues(result).Inc()
}

// IncrementConnections increments active connections
func (mp *MetricsProvider) IncrementConnections(connType string) {
	if mp.activeConnections == nil {
		return
	}
	mp.activeConnections.WithLabelValues(connType).Inc()
}

// DecrementConnections decrements active connections
func (mp *MetricsProvider) DecrementConnections(connType string) {
	if mp.activeConnections == nil {
		return
	}
	mp.activeConnections.WithLabelValues(connType).Dec()
}

// Handler returns an HTTP handler for Prometheus metrics
func (mp *MetricsProvider) Handler() http.Handler {
	if mp.handler != nil {
		return mp.handler
	}
	return http.NotFoundHandler()
}

// Registry exposes the registry, nil when disabled
func (mp *MetricsProvider) Registry() *prometheus.Registry {
	return mp.registry
}
