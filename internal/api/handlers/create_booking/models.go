package create_booking

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID    string `json:"roomId,omitempty"`    // Пусто - комната по умолчанию
	ManagerID string `json:"managerId,omitempty"` // Пусто - менеджер по умолчанию
	Date      string `json:"date"`                // "2026-10-21"
	StartTime string `json:"startTime"`           // "10:00"
	EndTime   string `json:"endTime"`             // "11:00"

	Name                   *string `json:"name,omitempty"`
	Description            *string `json:"description,omitempty"`
	HasRefreshments        bool    `json:"hasRefreshments"`
	RefreshmentQuantity    int     `json:"refreshmentQuantity"`
	RefreshmentDescription *string `json:"refreshmentDescription,omitempty"`
}

// UsedDefaultsResponse какие ресурсы были подставлены по умолчанию
type UsedDefaultsResponse struct {
	Room    bool `json:"room"`
	Manager bool `json:"manager"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	models.BookingResponse
	UsedDefaults UsedDefaultsResponse `json:"usedDefaults"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Формат времени проверяет use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:                 r.RoomID,
		ManagerID:              r.ManagerID,
		Date:                   date,
		StartTime:              types.TimeString(r.StartTime),
		EndTime:                types.TimeString(r.EndTime),
		Name:                   r.Name,
		Description:            r.Description,
		HasRefreshments:        r.HasRefreshments,
		RefreshmentQuantity:    r.RefreshmentQuantity,
		RefreshmentDescription: r.RefreshmentDescription,
	}, nil
}
