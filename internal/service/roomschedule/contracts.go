package roomschedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Cache интерфейс кэша бронирований комнаты за день
type Cache interface {
	Get(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, bool)
	Set(ctx context.Context, roomID string, day time.Time, bookings []*domain.Booking)
	Invalidate(ctx context.Context, roomID string, days ...time.Time) error
}

// Breaker интерфейс circuit breaker вокруг обращения к БД
type Breaker interface {
	Execute(ctx context.Context, fn func(ctx context.Context) ([]*domain.Booking, error)) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
