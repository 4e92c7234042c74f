package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	getAvailableSlots "github.com/lamasat/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpecialistID = "invalid specialist id"
	msgMissingDate         = "date is required"
	msgInvalidParams       = "invalid date or service ids, expected date=YYYY-MM-DD and serviceIds=<uuid>[,<uuid>...]"
	msgInvalidDuration     = "invalid durationMinutes"
	msgSpecialistNotFound  = "specialist not found"
	msgServiceNotFound     = "service not found"
	msgInvalidDate         = "date is in the past or beyond the booking horizon"
	msgInvalidRequest      = "either serviceIds or durationMinutes must be provided"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{specialistId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceIds (uuid через запятую)
// или durationMinutes (когда услуги не выбраны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем specialistId из URL
	specialistID, err := uuid.Parse(vars["specialistId"])
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /specialists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceIDsStr := r.URL.Query().Get("serviceIds")

	durationMinutes := 0
	if durationStr := r.URL.Query().Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /specialists/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(specialistID, dateStr, serviceIDsStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSpecialistNotFound):
			h.logger.Warn("GET /specialists/{id}/available-slots - Specialist not found: specialist_id=%s", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /specialists/{id}/available-slots - Service not found: specialist_id=%s", specialistID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate),
			errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /specialists/{id}/available-slots - Invalid date: specialist_id=%s, date=%s",
				specialistID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /specialists/{id}/available-slots - Invalid input: specialist_id=%s, error=%v",
				specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /specialists/{id}/available-slots - Failed to get slots: specialist_id=%s, date=%s, error=%v",
				specialistID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /specialists/{id}/available-slots - Slots retrieved successfully: specialist_id=%s, date=%s, slots_count=%d",
		specialistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
