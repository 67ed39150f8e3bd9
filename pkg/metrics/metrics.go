package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "room_booking"

// Metrics коллектор метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge

	bookingsTotal      *prometheus.CounterVec
	availabilityChecks *prometheus.CounterVec
	suggestedSlots     prometheus.Histogram
	cacheRequests      *prometheus.CounterVec
	breakerState       *prometheus.GaugeVec

	meetingsToday   prometheus.Gauge
	ongoingMeetings prometheus.Gauge
	availableRooms  prometheus.Gauge
	totalRooms      prometheus.Gauge
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает и регистрирует метрики в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_query_errors_total",
			Help:        "Database query errors.",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_open_connections",
			Help:        "Open database connections.",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_in_use_connections",
			Help:        "Database connections in use.",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_idle_connections",
			Help:        "Idle database connections.",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: labels,
		}),

		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "bookings_total",
			Help:        "Booking operations by action.",
			ConstLabels: labels,
		}, []string{"action"}),
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "availability_checks_total",
			Help:        "Availability checks by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		suggestedSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "suggested_slots",
			Help:        "Number of suggested slots returned for conflicting requests.",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 3, 4, 5, 6},
		}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "day_bookings_cache_requests_total",
			Help:        "Room/day bookings cache lookups by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "circuit_breaker_state",
			Help:        "Circuit breaker state (0=closed, 1=half-open, 2=open).",
			ConstLabels: labels,
		}, []string{"name"}),

		meetingsToday: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "meetings_today",
			Help:        "Bookings starting today.",
			ConstLabels: labels,
		}),
		ongoingMeetings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "meetings_ongoing",
			Help:        "Bookings in progress right now.",
			ConstLabels: labels,
		}),
		availableRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "rooms_available",
			Help:        "Rooms without an ongoing booking.",
			ConstLabels: labels,
		}),
		totalRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "rooms_total",
			Help:        "Total number of rooms.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
		m.bookingsTotal,
		m.availabilityChecks,
		m.suggestedSlots,
		m.cacheRequests,
		m.breakerState,
		m.meetingsToday,
		m.ongoingMeetings,
		m.availableRooms,
		m.totalRooms,
	)

	return m
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// IncBooking увеличивает счетчик операций с бронированиями
// action: created, updated, deleted, rejected
func (m *Metrics) IncBooking(action string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(action).Inc()
}

// IncAvailabilityCheck увеличивает счетчик проверок доступности
// outcome: available, conflict, incomplete, fail_open
func (m *Metrics) IncAvailabilityCheck(outcome string) {
	if m == nil {
		return
	}
	m.availabilityChecks.WithLabelValues(outcome).Inc()
}

// ObserveSuggestedSlots записывает количество предложенных слотов
func (m *Metrics) ObserveSuggestedSlots(n int) {
	if m == nil {
		return
	}
	m.suggestedSlots.Observe(float64(n))
}

// IncCache увеличивает счетчик обращений к кэшу (hit, miss, error)
func (m *Metrics) IncCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}

// SetBreakerState обновляет состояние circuit breaker
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.breakerState.WithLabelValues(name).Set(float64(state))
}

// SetDashboard обновляет gauge-метрики дашборда
func (m *Metrics) SetDashboard(meetingsToday, ongoing, availableRooms, totalRooms int) {
	if m == nil {
		return
	}
	m.meetingsToday.Set(float64(meetingsToday))
	m.ongoingMeetings.Set(float64(ongoing))
	m.availableRooms.Set(float64(availableRooms))
	m.totalRooms.Set(float64(totalRooms))
}
