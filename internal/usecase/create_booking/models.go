package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID    string           // ID комнаты (пусто - комната по умолчанию)
	ManagerID string           // ID менеджера (пусто - менеджер по умолчанию)
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания

	Name                   *string
	Description            *string
	HasRefreshments        bool
	RefreshmentQuantity    int
	RefreshmentDescription *string
}

// UsedDefaults какие ресурсы были подставлены по умолчанию
type UsedDefaults struct {
	Room    bool
	Manager bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking      *domain.Booking
	UsedDefaults UsedDefaults
}
