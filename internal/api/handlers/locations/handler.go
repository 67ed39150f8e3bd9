package locations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// List GET /api/v1/locations?search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListLocations(r.Context(), handlers.QueryParam(r, "search"))
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/locations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /locations - Failed to create location: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /locations - Location created: location_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Default POST /api/v1/locations/default
func (h *Handler) Default(w http.ResponseWriter, r *http.Request) {
	location, err := h.service.DefaultLocation(r.Context())
	if err != nil {
		h.logger.Error("POST /locations/default - Failed to get default location: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainLocation(location))
}
