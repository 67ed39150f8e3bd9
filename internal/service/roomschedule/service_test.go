package roomschedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type cacheMock struct {
	mock.Mock
}

func (m *cacheMock) Get(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, bool) {
	args := m.Called(ctx, roomID, day)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *cacheMock) Set(ctx context.Context, roomID string, day time.Time, bookings []*domain.Booking) {
	m.Called(ctx, roomID, day, bookings)
}

func (m *cacheMock) Invalidate(ctx context.Context, roomID string, days ...time.Time) error {
	args := m.Called(ctx, roomID, days)
	return args.Error(0)
}

type openBreaker struct{}

func (openBreaker) Execute(context.Context, func(ctx context.Context) ([]*domain.Booking, error)) ([]*domain.Booking, error) {
	return nil, errors.New("circuit open")
}

var day = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func TestLoad_CacheHit(t *testing.T) {
	repo := &repoMock{}
	cache := &cacheMock{}
	cached := []*domain.Booking{{ID: "b-1"}}
	cache.On("Get", mock.Anything, "room-1", day).Return(cached, true)

	svc := NewService(repo, cache, nil, time.UTC, logger.Nop())
	got, err := svc.Load(context.Background(), "room-1", day.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestLoad_CacheMissReadsDayFromRepository(t *testing.T) {
	repo := &repoMock{}
	cache := &cacheMock{}
	fromDB := []*domain.Booking{{ID: "b-1"}}

	cache.On("Get", mock.Anything, "room-1", day).Return(nil, false)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return *f.RoomID == "room-1" && f.From.Equal(day) && f.To.Equal(day.AddDate(0, 0, 1)) && f.IsSingleRoomDay()
	})).Return(fromDB, nil)
	cache.On("Set", mock.Anything, "room-1", day, fromDB).Return()

	svc := NewService(repo, cache, nil, time.UTC, logger.Nop())
	got, err := svc.Load(context.Background(), "room-1", day)

	require.NoError(t, err)
	assert.Equal(t, fromDB, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestLoad_Errors(t *testing.T) {
	repo := &repoMock{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(repo, nil, nil, time.UTC, logger.Nop()).Load(context.Background(), "room-1", day)
	assert.ErrorIs(t, err, ErrLoad)

	_, err = NewService(&repoMock{}, nil, openBreaker{}, time.UTC, logger.Nop()).Load(context.Background(), "room-1", day)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestInvalidate_CoversEveryTouchedDay(t *testing.T) {
	cache := &cacheMock{}
	cache.On("Invalidate", mock.Anything, "room-1", []time.Time{day, day.AddDate(0, 0, 1)}).Return(nil)
	cache.On("Invalidate", mock.Anything, "room-2", []time.Time{day}).Return(errors.New("redis down"))

	svc := NewService(&repoMock{}, cache, nil, time.UTC, logger.Nop())
	svc.Invalidate(context.Background(),
		&domain.Booking{RoomID: "room-1", StartAt: day.Add(22 * time.Hour), EndAt: day.Add(26 * time.Hour)},
		&domain.Booking{RoomID: "room-2", StartAt: day.Add(10 * time.Hour), EndAt: day.Add(11 * time.Hour)},
		nil,
	)

	cache.AssertExpectations(t)
}

func TestDayBounds_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	from, to := DayBounds(day, loc)

	assert.Equal(t, time.Date(2026, 10, 19, 21, 0, 0, 0, time.UTC), from.UTC())
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}
