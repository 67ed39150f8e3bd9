package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// ManagerRepository интерфейс репозитория менеджеров
type ManagerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Manager, error)
}

// AvailabilityEngine интерфейс движка проверки доступности
type AvailabilityEngine interface {
	CheckAvailability(req domain.AvailabilityRequest, bookings []*domain.Booking) (*domain.AvailabilityResult, error)
	Location() *time.Location
}

// RoomSchedule интерфейс источника расписания комнаты
type RoomSchedule interface {
	DayFilter(roomID string, day time.Time) domain.BookingsFilter
	Invalidate(ctx context.Context, bookings ...*domain.Booking)
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// Metrics интерфейс для метрик бронирований
type Metrics interface {
	IncBooking(action string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
