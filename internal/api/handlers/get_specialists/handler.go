package get_specialists

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
)

const (
	msgInvalidServiceID = "invalid serviceId"
)

type Handler struct {
	service SpecialistService
	// admin режим показывает в том числе выключенных специалистов
	admin  bool
	logger Logger
}

// NewHandler хендлер публичного списка специалистов
func NewHandler(service SpecialistService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// NewAdminHandler хендлер списка специалистов для админки
func NewAdminHandler(service SpecialistService, logger Logger) *Handler {
	return &Handler{service: service, admin: true, logger: logger}
}

// Handle GET /api/v1/specialists и GET /api/v1/admin/specialists
// Query params: serviceId (опционально, фильтр по услуге)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var serviceID *uuid.UUID

	if serviceIDStr := r.URL.Query().Get("serviceId"); serviceIDStr != "" {
		id, err := uuid.Parse(serviceIDStr)
		if err != nil {
			h.logger.Warn("GET /specialists - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	result, err := h.service.List(r.Context(), h.admin, serviceID)
	if err != nil {
		h.logger.Error("GET /specialists - Failed to get specialists: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /specialists - Specialists retrieved successfully: count=%d", len(result.Specialists))
	handlers.RespondJSON(w, http.StatusOK, result)
}
