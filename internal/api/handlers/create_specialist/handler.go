package create_specialist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/service/specialists"
	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

const (
	msgInvalidBody     = "invalid request body"
	msgInvalidInput    = "invalid specialist data"
	msgServiceNotFound = "linked service not found"
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

// Handle POST /api/v1/admin/specialists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpecialistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /admin/specialists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, specialists.ErrInvalidInput):
			h.logger.Warn("POST /admin/specialists - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, specialists.ErrServiceNotFound):
			h.logger.Warn("POST /admin/specialists - Linked service not found: %v", err)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /admin/specialists - Failed to create specialist: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/specialists - Specialist created successfully: specialist_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
