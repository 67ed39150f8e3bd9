package handlers

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// SuggestedSlotResponse альтернативный слот
type SuggestedSlotResponse struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// AvailabilityResponse результат проверки доступности
type AvailabilityResponse struct {
	Available           bool                     `json:"available"`
	ConflictingBookings []models.BookingResponse `json:"conflictingBookings"`
	SuggestedSlots      []SuggestedSlotResponse  `json:"suggestedSlots"`
	Degraded            bool                     `json:"degraded,omitempty"`
}

// ConflictResponse тело ответа 409 при пересечении бронирований
type ConflictResponse struct {
	Error string `json:"error"`
	AvailabilityResponse
}

// FromDomainAvailability конвертирует результат проверки в DTO
func FromDomainAvailability(result *domain.AvailabilityResult, loc *time.Location) AvailabilityResponse {
	if result == nil {
		result = domain.NewAvailableResult()
	}

	resp := AvailabilityResponse{
		Available:           result.Available,
		ConflictingBookings: models.FromDomainBookingList(result.ConflictingBookings, loc).Bookings,
		SuggestedSlots:      make([]SuggestedSlotResponse, 0, len(result.SuggestedSlots)),
	}
	for _, s := range result.SuggestedSlots {
		resp.SuggestedSlots = append(resp.SuggestedSlots, SuggestedSlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return resp
}

// RespondAvailabilityConflict пишет 409 с конфликтами и предложениями
func RespondAvailabilityConflict(w http.ResponseWriter, message string, result *domain.AvailabilityResult, loc *time.Location) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error:                message,
		AvailabilityResponse: FromDomainAvailability(result, loc),
	})
}
