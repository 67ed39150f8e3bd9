package managers

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

// List GET /api/v1/managers?search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListManagers(r.Context(), handlers.QueryParam(r, "search"))
	if err != nil {
		h.logger.Error("GET /managers - Failed to list managers: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/managers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateManagerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /managers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateManager(r.Context(), &req)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /managers - Failed to create manager: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /managers - Manager created: manager_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Default POST /api/v1/managers/default
func (h *Handler) Default(w http.ResponseWriter, r *http.Request) {
	manager, err := h.service.DefaultManager(r.Context())
	if err != nil {
		h.logger.Error("POST /managers/default - Failed to get default manager: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainManager(manager))
}
