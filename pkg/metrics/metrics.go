package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	ExternalCalendarFetches *prometheus.CounterVec
	BookingConflicts        *prometheus.CounterVec
	AvailabilityQueries     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency by operation.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_total",
				Help: "Database query errors by operation.",
			},
			[]string{"service", "operation"},
		),
		DBOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Open connections in the pool.",
			},
			[]string{"service"},
		),
		DBInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_in_use_connections",
				Help: "Connections currently in use.",
			},
			[]string{"service"},
		),
		DBIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Idle connections in the pool.",
			},
			[]string{"service"},
		),

		ExternalCalendarFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_calendar_fetches_total",
				Help: "External calendar busy-window fetches by outcome.",
			},
			[]string{"service", "outcome"},
		),
		BookingConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_conflicts_total",
				Help: "Booking attempts rejected because the slot was taken concurrently.",
			},
			[]string{"service", "reason"},
		),
		AvailabilityQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_queries_total",
				Help: "Availability computations by kind.",
			},
			[]string{"service", "kind"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.ExternalCalendarFetches,
		m.BookingConflicts,
		m.AvailabilityQueries,
	)

	return m
}

// ServiceName возвращает имя сервиса, используемое в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// ObserveExternalFetch учитывает результат обращения к внешнему календарю.
// Безопасен для nil (метрики выключены).
func (m *Metrics) ObserveExternalFetch(outcome string) {
	if m == nil {
		return
	}
	m.ExternalCalendarFetches.WithLabelValues(m.serviceName, outcome).Inc()
}

// ObserveBookingConflict учитывает отказ в бронировании из-за гонки
func (m *Metrics) ObserveBookingConflict(reason string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(m.serviceName, reason).Inc()
}

// ObserveAvailabilityQuery учитывает вычисление доступности (day, month, tables)
func (m *Metrics) ObserveAvailabilityQuery(kind string) {
	if m == nil {
		return
	}
	m.AvailabilityQueries.WithLabelValues(m.serviceName, kind).Inc()
}
