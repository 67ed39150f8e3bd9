package check_availability

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
// Все поля необязательны: незаполненный запрос считается доступным
type CheckAvailabilityRequest struct {
	RoomID           string `json:"roomId"`
	Date             string `json:"date"`      // "2026-10-21"
	StartTime        string `json:"startTime"` // "10:00"
	EndTime          string `json:"endTime"`   // "11:00"
	ExcludeBookingID string `json:"excludeBookingId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	req := &checkAvailability.Request{
		RoomID:           r.RoomID,
		StartTime:        types.TimeString(r.StartTime),
		EndTime:          types.TimeString(r.EndTime),
		ExcludeBookingID: r.ExcludeBookingID,
	}

	date, err := handlers.ParseOptionalDate(&r.Date)
	if err != nil {
		return nil, err
	}
	if date != nil {
		req.Date = *date
	}

	return req, nil
}
