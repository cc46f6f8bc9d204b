package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	runsTotal             *prometheus.CounterVec
	runDuration           prometheus.Histogram
	reportTransactions    prometheus.Gauge
	reportWarnings        prometheus.Gauge
	carryForwardWarnings  prometheus.Counter
	sourceRequests        *prometheus.CounterVec
	sourceRequestDuration prometheus.Histogram
	sourceRetries         *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	exportsTotal          *prometheus.CounterVec
	notificationsTotal    *prometheus.CounterVec
}

// NewPrometheusMetrics registers the engine metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the engine metrics with reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_runs_total",
				Help: "Total number of reconciliation runs",
			},
			[]string{"status", "reason"},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconciliation_run_duration_milliseconds",
				Help:    "Reconciliation run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		reportTransactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_report_transactions",
				Help: "Number of transactions in the last report",
			},
		),
		reportWarnings: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_report_warnings",
				Help: "Number of carry-forward warnings in the last report",
			},
		),
		carryForwardWarnings: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "carry_forward_warnings_total",
				Help: "Total number of invoices skipped during carry-forward",
			},
		),
		sourceRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "data_source_requests_total",
				Help: "Total number of data source requests",
			},
			[]string{"endpoint", "status"},
		),
		sourceRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "data_source_request_duration_seconds",
				Help:    "Data source request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		sourceRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "data_source_retries_total",
				Help: "Total number of data source request retries",
			},
			[]string{"endpoint"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_exports_total",
				Help: "Total number of report exports by sink",
			},
			[]string{"sink", "status"},
		),
		notificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_notifications_total",
				Help: "Total number of report notifications by channel",
			},
			[]string{"channel", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "reconciliation.run":
		m.runsTotal.WithLabelValues(status, tags["reason"]).Inc()
	case "carry_forward.warning":
		m.carryForwardWarnings.Inc()
	case "data_source.request":
		m.sourceRequests.WithLabelValues(tags["endpoint"], status).Inc()
	case "data_source.retry":
		m.sourceRetries.WithLabelValues(tags["endpoint"]).Inc()
	case "report.export":
		m.exportsTotal.WithLabelValues(tags["sink"], status).Inc()
	case "report.notify":
		m.notificationsTotal.WithLabelValues(tags["channel"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "reconciliation.run":
		m.runDuration.Observe(float64(duration.Milliseconds()))
	case "data_source.request":
		m.sourceRequestDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "reconciliation.transactions":
		m.reportTransactions.Set(value)
	case "reconciliation.warnings":
		m.reportWarnings.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)       {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)       {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
