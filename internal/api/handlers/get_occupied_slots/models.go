package get_occupied_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	getOccupiedSlots "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_occupied_slots"
)

// OccupiedSlotResponse занятый интервал
type OccupiedSlotResponse struct {
	Start   string                 `json:"start"`
	End     string                 `json:"end"`
	Booking models.BookingResponse `json:"booking"`
}

// OccupiedSlotsResponse HTTP response model
type OccupiedSlotsResponse struct {
	RoomID   string                 `json:"roomId"`
	Date     string                 `json:"date"`
	Slots    []OccupiedSlotResponse `json:"slots"`
	Degraded bool                   `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupiedSlots.Response, loc *time.Location) *OccupiedSlotsResponse {
	result := &OccupiedSlotsResponse{
		RoomID:   resp.RoomID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]OccupiedSlotResponse, 0, len(resp.Slots)),
		Degraded: resp.Degraded,
	}
	for _, s := range resp.Slots {
		result.Slots = append(result.Slots, OccupiedSlotResponse{
			Start:   s.Start.String(),
			End:     s.End.String(),
			Booking: *models.FromDomainBooking(s.Booking, loc),
		})
	}
	return result
}
