package update_booking

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Отсутствующее поле означает "не менять"
type UpdateBookingRequest struct {
	RoomID    *string `json:"roomId,omitempty"`
	ManagerID *string `json:"managerId,omitempty"`
	Date      *string `json:"date,omitempty"`      // "2026-10-21"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`   // "11:00"

	Name                   *string `json:"name,omitempty"`
	Description            *string `json:"description,omitempty"`
	HasRefreshments        *bool   `json:"hasRefreshments,omitempty"`
	RefreshmentQuantity    *int    `json:"refreshmentQuantity,omitempty"`
	RefreshmentDescription *string `json:"refreshmentDescription,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id string) (*updateBooking.Request, error) {
	date, err := handlers.ParseOptionalDate(r.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := handlers.ParseOptionalTime(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := handlers.ParseOptionalTime(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		ID:                     id,
		RoomID:                 r.RoomID,
		ManagerID:              r.ManagerID,
		Date:                   date,
		StartTime:              startTime,
		EndTime:                endTime,
		Name:                   r.Name,
		Description:            r.Description,
		HasRefreshments:        r.HasRefreshments,
		RefreshmentQuantity:    r.RefreshmentQuantity,
		RefreshmentDescription: r.RefreshmentDescription,
	}, nil
}
