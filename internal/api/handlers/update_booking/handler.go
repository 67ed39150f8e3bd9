package update_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректный формат даты или времени"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgNotFound           = "бронирование не найдено"
	msgRoomNotFound       = "комната не найдена"
	msgManagerNotFound    = "менеджер не найден"
	msgSlotNotAvailable   = "выбранное время пересекается с другими бронированиями"
	msgDateInPast         = "нельзя перенести бронирование на прошедшую дату"
	msgTooLateToBook      = "слишком поздно для бронирования этого времени"
)

type Handler struct {
	useCase  UpdateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *updateBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /bookings/{id} - Slot not available: booking_id=%s", bookingID)
			handlers.RespondAvailabilityConflict(w, msgSlotNotAvailable, conflict.Result, h.location)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrManagerNotFound):
			handlers.RespondNotFound(w, msgManagerNotFound)

		case errors.Is(err, updateBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateBooking.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, updateBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, updateBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking, h.location))
}
