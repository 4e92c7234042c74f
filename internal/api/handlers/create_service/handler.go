package create_service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/service/catalog"
	"github.com/lamasat/salon-booking-service/internal/service/catalog/models"
)

const (
	msgInvalidBody  = "invalid request body"
	msgInvalidInput = "invalid service data"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/services - Failed to create service: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created successfully: service_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
