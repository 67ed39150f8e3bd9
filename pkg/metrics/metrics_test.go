package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.IncBooking("created")
	m.IncBooking("created")
	m.IncAvailabilityCheck("conflict")
	m.ObserveHTTPRequest("GET", "/api/v1/bookings", 200, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/bookings", "200")))
}

func TestMetrics_Dashboard(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.SetDashboard(5, 2, 3, 5)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.meetingsToday))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ongoingMeetings))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.availableRooms))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.totalRooms))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBooking("created")
		m.IncCache("hit")
		m.SetBreakerState("day-bookings", 2)
		m.ObserveSuggestedSlots(3)
		m.ObserveDBQuery("select", time.Millisecond, nil)
	})
}
