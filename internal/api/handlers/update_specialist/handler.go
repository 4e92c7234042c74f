package update_specialist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/service/specialists"
	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

const (
	msgInvalidSpecialistID = "invalid specialist id"
	msgInvalidBody         = "invalid request body"
	msgNotFound            = "specialist not found"
	msgInvalidInput        = "invalid specialist data"
	msgServiceNotFound     = "linked service not found"
)

type Handler struct {
	service SpecialistService
	logger  Logger
}

func NewHandler(service SpecialistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/specialists/{specialistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	specialistID, err := uuid.Parse(vars["specialistId"])
	if err != nil {
		h.logger.Warn("PUT /admin/specialists/{id} - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	var req models.UpdateSpecialistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /admin/specialists/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), specialistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, specialists.ErrSpecialistNotFound):
			h.logger.Warn("PUT /admin/specialists/{id} - Specialist not found: specialist_id=%s", specialistID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, specialists.ErrInvalidInput):
			h.logger.Warn("PUT /admin/specialists/{id} - Invalid input: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, specialists.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/specialists/{id} - Linked service not found: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /admin/specialists/{id} - Failed to update specialist: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/specialists/{id} - Specialist updated successfully: specialist_id=%s", specialistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
