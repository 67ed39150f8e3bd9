package rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLocationNotFound   = "локация не найдена"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/rooms?locationId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRooms(r.Context(), handlers.QueryParam(r, "locationId"))
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/rooms
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, directory.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("POST /rooms - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Default POST /api/v1/rooms/default
func (h *Handler) Default(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.DefaultRoom(r.Context())
	if err != nil {
		h.logger.Error("POST /rooms/default - Failed to get default room: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRoom(room))
}
