package get_dashboard_stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type serviceStub struct {
	stats *domain.DashboardStats
	err   error
}

func (s serviceStub) Stats(context.Context) (*domain.DashboardStats, error) {
	return s.stats, s.err
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	svc := serviceStub{stats: &domain.DashboardStats{MeetingsToday: 3, AvailableRooms: 2, TotalRooms: 4, ActiveParticipants: 12, CoffeeOrders: 5}}
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalBookings":0,"meetingsToday":3,"ongoingMeetings":0,"upcomingMeetings":0,
		"availableRooms":2,"totalRooms":4,"activeParticipants":12,"coffeeOrders":5}`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(serviceStub{err: errors.New("db down")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
