package delete_schedule_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/service/specialists"
)

const (
	msgInvalidSpecialistID = "invalid specialist id"
	msgInvalidSlotID       = "invalid slot id"
	msgNotFound            = "schedule slot not found"
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

// Handle DELETE /api/v1/admin/specialists/{specialistId}/schedule/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	specialistID, err := uuid.Parse(vars["specialistId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/specialists/{id}/schedule/{slotId} - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	slotID, err := uuid.Parse(vars["slotId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/specialists/{id}/schedule/{slotId} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteScheduleSlot(r.Context(), specialistID, slotID); err != nil {
		switch {
		case errors.Is(err, specialists.ErrScheduleSlotNotFound):
			h.logger.Warn("DELETE /admin/specialists/{id}/schedule/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/specialists/{id}/schedule/{slotId} - Failed to delete slot: slot_id=%s, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/specialists/{id}/schedule/{slotId} - Slot deleted successfully: specialist_id=%s, slot_id=%s",
		specialistID, slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
