package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeRequestsTotal   *prometheus.CounterVec
	storeRequestDuration *prometheus.HistogramVec

	snapshotBookings    prometheus.Gauge
	staleResponsesTotal prometheus.Counter
	chartsRebuiltTotal  prometheus.Counter
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		storeRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "record_store_requests_total",
				Help:        "Total number of requests to the record store",
				ConstLabels: constLabels,
			},
			[]string{"collection", "method", "outcome"},
		),
		storeRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "record_store_request_duration_seconds",
				Help:        "Duration of record store requests in seconds",
				ConstLabels: constLabels,
				Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"collection", "method"},
		),
		snapshotBookings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "dashboard_snapshot_bookings",
				Help:        "Number of bookings in the current dashboard snapshot",
				ConstLabels: constLabels,
			},
		),
		staleResponsesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "dashboard_stale_responses_total",
				Help:        "Total number of dashboard loads discarded because a newer load was already applied",
				ConstLabels: constLabels,
			},
		),
		chartsRebuiltTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "dashboard_chart_rebuilds_total",
				Help:        "Total number of chart board rebuilds",
				ConstLabels: constLabels,
			},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.storeRequestsTotal,
		m.storeRequestDuration,
		m.snapshotBookings,
		m.staleResponsesTotal,
		m.chartsRebuiltTotal,
	)

	return m
}

// RecordHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordStoreRequest фиксирует запрос к хранилищу записей
// outcome: "ok", "not_found", "status_error", "transport_error", "decode_error"
func (m *Metrics) RecordStoreRequest(collection, method, outcome string, duration time.Duration) {
	m.storeRequestsTotal.WithLabelValues(collection, method, outcome).Inc()
	m.storeRequestDuration.WithLabelValues(collection, method).Observe(duration.Seconds())
}

func (m *Metrics) SetSnapshotSize(n int) {
	m.snapshotBookings.Set(float64(n))
}

func (m *Metrics) IncStaleResponses() {
	m.staleResponsesTotal.Inc()
}

func (m *Metrics) IncChartRebuilds() {
	m.chartsRebuiltTotal.Inc()
}
