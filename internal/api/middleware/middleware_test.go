package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type observation struct {
	method string
	route  string
	status int
}

type metricsStub struct {
	observed []observation
}

func (m *metricsStub) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.observed = append(m.observed, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := &metricsStub{}

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(metrics))
	router.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-42", nil))

	require.Len(t, metrics.observed, 1)
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/v1/bookings/{bookingId}", status: http.StatusNotFound}, metrics.observed[0])
}

func TestRateLimiter_PerClient(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	fixed := time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	handler := limiter.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("2.2.2.2"))

	fixed = fixed.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	fixed := time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	limiter.allow("1.1.1.1")
	fixed = fixed.Add(limiterIdleTTL + time.Second)
	limiter.allow("2.2.2.2")
	limiter.Cleanup()

	assert.Len(t, limiter.clients, 1)
	assert.Contains(t, limiter.clients, "2.2.2.2")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:5123"
	assert.Equal(t, "192.168.1.5", clientIP(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestRecovery(t *testing.T) {
	handler := Recovery(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
