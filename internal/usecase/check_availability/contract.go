package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomSchedule интерфейс источника бронирований комнаты за день
type RoomSchedule interface {
	Load(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error)
}

// AvailabilityEngine интерфейс движка проверки доступности
type AvailabilityEngine interface {
	CheckAvailability(req domain.AvailabilityRequest, bookings []*domain.Booking) (*domain.AvailabilityResult, error)
}

// Metrics интерфейс для метрик проверок доступности
type Metrics interface {
	IncAvailabilityCheck(outcome string)
	ObserveSuggestedSlots(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
