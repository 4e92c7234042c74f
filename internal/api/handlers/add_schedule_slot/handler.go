package add_schedule_slot

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
	msgInvalidInput        = "invalid schedule slot data"
	msgOverlap             = "schedule slot overlaps an existing one"
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

// Handle POST /api/v1/admin/specialists/{specialistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	specialistID, err := uuid.Parse(vars["specialistId"])
	if err != nil {
		h.logger.Warn("POST /admin/specialists/{id}/schedule - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	var req models.AddScheduleSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /admin/specialists/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.AddScheduleSlot(r.Context(), specialistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, specialists.ErrSpecialistNotFound):
			h.logger.Warn("POST /admin/specialists/{id}/schedule - Specialist not found: specialist_id=%s", specialistID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, specialists.ErrInvalidInput):
			h.logger.Warn("POST /admin/specialists/{id}/schedule - Invalid input: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, specialists.ErrScheduleOverlap):
			h.logger.Warn("POST /admin/specialists/{id}/schedule - Overlapping slot: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondConflict(w, msgOverlap)

		default:
			h.logger.Error("POST /admin/specialists/{id}/schedule - Failed to add slot: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/specialists/{id}/schedule - Slot added successfully: specialist_id=%s, slot_id=%s",
		specialistID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
