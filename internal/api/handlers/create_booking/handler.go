package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgSlotNotAvailable   = "выбранное время пересекается с другими бронированиями"
	msgRoomNotFound       = "комната не найдена"
	msgManagerNotFound    = "менеджер не найден"
	msgDateInPast         = "нельзя бронировать на прошедшую дату"
	msgTooLateToBook      = "слишком поздно для бронирования этого времени"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot not available: room_id=%s, %s %s-%s",
				req.RoomID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondAvailabilityConflict(w, msgSlotNotAvailable, conflict.Result, h.location)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrManagerNotFound):
			h.logger.Warn("POST /bookings - Manager not found: manager_id=%s", req.ManagerID)
			handlers.RespondNotFound(w, msgManagerNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := CreateBookingResponse{
		BookingResponse: *models.FromDomainBooking(result.Booking, h.location),
		UsedDefaults: UsedDefaultsResponse{
			Room:    result.UsedDefaults.Room,
			Manager: result.UsedDefaults.Manager,
		},
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s",
		result.Booking.ID, result.Booking.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
