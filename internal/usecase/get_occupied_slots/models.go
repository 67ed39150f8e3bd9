package get_occupied_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса занятых интервалов комнаты
type Request struct {
	RoomID string
	Date   time.Time
}

// Response модель ответа со списком занятых интервалов
type Response struct {
	Date     time.Time
	RoomID   string
	Slots    []domain.OccupiedSlot
	Degraded bool // Бронирования получить не удалось, список пуст
}
