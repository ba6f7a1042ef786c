package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the application metrics.
type MetricsService struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	webhookEvents *prometheus.CounterVec
	registrations *prometheus.CounterVec
}

// NewMetricsService creates the registry with all collectors registered.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &MetricsService{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enrolld_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "enrolld_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enrolld_webhook_events_total",
			Help: "Webhook events by reconciliation outcome.",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enrolld_registrations_total",
			Help: "Registration attempts by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(m.httpRequests, m.httpDuration, m.webhookEvents, m.registrations)
	return m
}

// Handler serves the /metrics endpoint.
func (m *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *MetricsService) ObserveHTTP(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordWebhookEvent counts a reconciliation outcome
// (registered, duplicate, unknown_intent, noop, cancelled, failed, ...).
func (m *MetricsService) RecordWebhookEvent(outcome string) {
	m.webhookEvents.WithLabelValues(outcome).Inc()
}

// RecordRegistration counts a registration result (success, partial, failed).
func (m *MetricsService) RecordRegistration(result string) {
	m.registrations.WithLabelValues(result).Inc()
}
