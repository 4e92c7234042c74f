package get_services

import (
	"net/http"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	// admin режим показывает в том числе выключенные услуги
	admin  bool
	logger Logger
}

// NewHandler хендлер публичной витрины услуг
func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// NewAdminHandler хендлер списка услуг для админки
func NewAdminHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, admin: true, logger: logger}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.admin)
	if err != nil {
		h.logger.Error("GET /services - Failed to get services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
