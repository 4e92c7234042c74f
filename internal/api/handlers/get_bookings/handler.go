package get_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/internal/service/bookings"
	"github.com/lamasat/salon-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidSpecialistID = "invalid specialistId"
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgInvalidFilter       = "invalid filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: specialistId, startDate, endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if specialistIDStr := query.Get("specialistId"); specialistIDStr != "" {
		specialistID, err := uuid.Parse(specialistIDStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid specialist ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpecialistID)
			return
		}
		req.SpecialistID = &specialistID
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
