package check_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса проверки доступности
// Незаполненные поля допустимы: такой запрос считается доступным
type Request struct {
	RoomID           string
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	ExcludeBookingID string
}

// Response модель ответа проверки доступности
type Response struct {
	Result *domain.AvailabilityResult

	// Degraded true, если бронирования не удалось получить и результат разрешающий по умолчанию
	Degraded bool
}
