package update_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель частичного обновления бронирования
// nil означает "не менять"
type Request struct {
	ID string

	RoomID    *string
	ManagerID *string
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString

	Name                   *string
	Description            *string
	HasRefreshments        *bool
	RefreshmentQuantity    *int
	RefreshmentDescription *string
}

// reschedules возвращает true, если меняется комната или время
func (r *Request) reschedules() bool {
	return r.RoomID != nil || r.Date != nil || r.StartTime != nil || r.EndTime != nil
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Booking *domain.Booking
}
