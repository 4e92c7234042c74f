package get_schedule

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
	msgNotFound            = "specialist not found"
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

// Handle GET /api/v1/admin/specialists/{specialistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	specialistID, err := uuid.Parse(vars["specialistId"])
	if err != nil {
		h.logger.Warn("GET /admin/specialists/{id}/schedule - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	result, err := h.service.ListSchedule(r.Context(), specialistID)
	if err != nil {
		switch {
		case errors.Is(err, specialists.ErrSpecialistNotFound):
			h.logger.Warn("GET /admin/specialists/{id}/schedule - Specialist not found: specialist_id=%s", specialistID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/specialists/{id}/schedule - Failed to get schedule: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/specialists/{id}/schedule - Schedule retrieved successfully: specialist_id=%s, slots_count=%d",
		specialistID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
