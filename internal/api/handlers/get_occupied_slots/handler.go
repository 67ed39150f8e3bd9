package get_occupied_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getOccupiedSlots "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_occupied_slots"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase  GetOccupiedSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetOccupiedSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/occupied-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	dateStr := handlers.QueryParam(r, "date")
	if dateStr == nil {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(*dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/occupied-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getOccupiedSlots.Request{RoomID: roomID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getOccupiedSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/occupied-slots - Failed: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
