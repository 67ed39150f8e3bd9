package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type scheduleMock struct {
	mock.Mock
}

func (m *scheduleMock) Load(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, roomID, day)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type metricsStub struct {
	outcomes    []string
	suggestions []int
}

func (m *metricsStub) IncAvailabilityCheck(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *metricsStub) ObserveSuggestedSlots(n int) {
	m.suggestions = append(m.suggestions, n)
}

var day = time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newUseCase(schedule *scheduleMock, metrics *metricsStub) *UseCase {
	return NewUseCase(schedule, availability.NewEngine(time.UTC), metrics, logger.Nop())
}

func request(start, end string) *Request {
	return &Request{
		RoomID:    "room-1",
		Date:      day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestExecute_Available(t *testing.T) {
	schedule := &scheduleMock{}
	metrics := &metricsStub{}
	schedule.On("Load", mock.Anything, "room-1", day).Return([]*domain.Booking{
		{ID: "b-1", RoomID: "room-1", StartAt: at(9, 0), EndAt: at(10, 0)},
	}, nil)

	resp, err := newUseCase(schedule, metrics).Execute(context.Background(), request("10:00", "11:00"))
	require.NoError(t, err)

	assert.True(t, resp.Result.Available)
	assert.False(t, resp.Degraded)
	assert.Empty(t, resp.Result.SuggestedSlots)
	assert.Equal(t, []string{"available"}, metrics.outcomes)
}

func TestExecute_Conflict(t *testing.T) {
	schedule := &scheduleMock{}
	metrics := &metricsStub{}
	schedule.On("Load", mock.Anything, "room-1", day).Return([]*domain.Booking{
		{ID: "b-1", RoomID: "room-1", StartAt: at(9, 0), EndAt: at(10, 0)},
	}, nil)

	resp, err := newUseCase(schedule, metrics).Execute(context.Background(), request("09:30", "10:30"))
	require.NoError(t, err)

	assert.False(t, resp.Result.Available)
	require.Len(t, resp.Result.ConflictingBookings, 1)
	assert.Equal(t, "b-1", resp.Result.ConflictingBookings[0].ID)
	require.Len(t, resp.Result.SuggestedSlots, 6)
	assert.Equal(t, types.TimeString("08:00"), resp.Result.SuggestedSlots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Result.SuggestedSlots[1].StartTime)
	assert.Equal(t, []string{"conflict"}, metrics.outcomes)
	assert.Equal(t, []int{len(resp.Result.SuggestedSlots)}, metrics.suggestions)
}

func TestExecute_IncompleteSkipsLoad(t *testing.T) {
	schedule := &scheduleMock{}
	metrics := &metricsStub{}

	resp, err := newUseCase(schedule, metrics).Execute(context.Background(), &Request{RoomID: "room-1", Date: day})
	require.NoError(t, err)

	assert.True(t, resp.Result.Available)
	schedule.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{"incomplete"}, metrics.outcomes)
}

func TestExecute_FailOpenOnLoadError(t *testing.T) {
	schedule := &scheduleMock{}
	metrics := &metricsStub{}
	schedule.On("Load", mock.Anything, "room-1", day).Return(nil, errors.New("connection refused"))

	resp, err := newUseCase(schedule, metrics).Execute(context.Background(), request("09:00", "10:00"))
	require.NoError(t, err)

	assert.True(t, resp.Result.Available)
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Result.ConflictingBookings)
	assert.Equal(t, []string{"fail_open"}, metrics.outcomes)
}

func TestExecute_InvalidTimes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       error
	}{
		{name: "malformed start", start: "9am", end: "10:00", want: ErrInvalidTime},
		{name: "end equals start", start: "10:00", end: "10:00", want: ErrInvalidTimeRange},
		{name: "end before start", start: "11:00", end: "10:00", want: ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := &scheduleMock{}

			_, err := newUseCase(schedule, &metricsStub{}).Execute(context.Background(), request(tt.start, tt.end))
			assert.ErrorIs(t, err, tt.want)
			schedule.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
