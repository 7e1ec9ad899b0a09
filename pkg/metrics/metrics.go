package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены в конфиге)
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	remoteCalls      *prometheus.HistogramVec
	dbQueries        *prometheus.HistogramVec
	dbOpenConns      *prometheus.GaugeVec
	dbInUseConns     *prometheus.GaugeVec
	actions          *prometheus.CounterVec
	eventsPublished  *prometheus.CounterVec
	serviceNameLabel string
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceNameLabel: serviceName,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests by route and status",
		}, []string{"service", "method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		remoteCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "remote_procedure_duration_seconds",
			Help:    "Latency of function gateway calls by procedure and outcome",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "procedure", "outcome"}),
		dbQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Document store query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Open connections in the database pool",
		}, []string{"service"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Connections currently in use",
		}, []string{"service"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_actions_total",
			Help: "User actions by name and outcome",
		}, []string{"service", "action", "outcome"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Action outcome events handed to the broker",
		}, []string{"service", "type"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.remoteCalls,
		m.dbQueries,
		m.dbOpenConns,
		m.dbInUseConns,
		m.actions,
		m.eventsPublished,
	)

	return m
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(m.serviceNameLabel, method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(m.serviceNameLabel, method, route).Observe(d.Seconds())
}

// ObserveRemoteCall фиксирует вызов удаленной процедуры
func (m *Metrics) ObserveRemoteCall(procedure, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.remoteCalls.WithLabelValues(m.serviceNameLabel, procedure, outcome).Observe(d.Seconds())
}

// ObserveDBQuery фиксирует выполнение запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.dbQueries.WithLabelValues(m.serviceNameLabel, operation).Observe(d.Seconds())
}

// SetDBPoolStats обновляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse int) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(m.serviceNameLabel).Set(float64(open))
	m.dbInUseConns.WithLabelValues(m.serviceNameLabel).Set(float64(inUse))
}

// IncAction фиксирует результат пользовательского действия
func (m *Metrics) IncAction(action, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(m.serviceNameLabel, action, outcome).Inc()
}

// IncEventPublished фиксирует отправку события в брокер
func (m *Metrics) IncEventPublished(eventType string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(m.serviceNameLabel, eventType).Inc()
}
