package get_occupied_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomSchedule интерфейс источника бронирований комнаты за день
type RoomSchedule interface {
	Load(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error)
}

// AvailabilityEngine интерфейс движка проекции бронирований на сутки
type AvailabilityEngine interface {
	OccupiedSlots(bookings []*domain.Booking) []domain.OccupiedSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
