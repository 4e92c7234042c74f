package track_bookings

import (
	"errors"
	"net/http"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	"github.com/lamasat/salon-booking-service/internal/service/bookings"
	"github.com/lamasat/salon-booking-service/internal/service/bookings/models"
)

const (
	msgMissingPhone = "phone is required"
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

// Handle GET /api/v1/bookings/track?phone=...
// Трекинг записей клиента по номеру телефона, без аккаунта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /bookings/track - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.Track(r.Context(), &models.TrackBookingsRequest{CustomerPhone: phone})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/track - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /bookings/track - Failed to track bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/track - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
