package update_service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/service/catalog"
	"github.com/lamasat/salon-booking-service/internal/service/catalog/models"
)

const (
	msgInvalidServiceID = "invalid service id"
	msgInvalidBody      = "invalid request body"
	msgNotFound         = "service not found"
	msgInvalidInput     = "invalid service data"
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

// Handle PUT /api/v1/admin/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := uuid.Parse(vars["serviceId"])
	if err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/services/{id} - Invalid input: service_id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/services/{id} - Failed to update service: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated successfully: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
