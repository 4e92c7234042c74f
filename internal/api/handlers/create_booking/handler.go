package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
	createBooking "github.com/lamasat/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidBody         = "invalid request body"
	msgInvalidDateTime     = "invalid date or startTime, expected date=YYYY-MM-DD and startTime=HH:MM"
	msgSpecialistNotFound  = "specialist not found"
	msgServiceNotFound     = "service not found"
	msgServiceNotProvided  = "specialist does not provide the selected service"
	msgOutsideWorkingHours = "requested time is outside specialist working hours"
	msgSlotConflict        = "time slot is already taken"
	msgInvalidDate         = "date or time is in the past or beyond the booking horizon"
	msgInvalidInput        = "invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSpecialistNotFound):
			h.logger.Warn("POST /bookings - Specialist not found: specialist_id=%s", req.SpecialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: specialist_id=%s", req.SpecialistID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotProvided):
			h.logger.Warn("POST /bookings - Service not provided by specialist: specialist_id=%s", req.SpecialistID)
			handlers.RespondBadRequest(w, msgServiceNotProvided)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: specialist_id=%s, date=%s, start=%s",
				req.SpecialistID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: specialist_id=%s, date=%s, start=%s",
				req.SpecialistID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Invalid date: specialist_id=%s, date=%s", req.SpecialistID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: specialist_id=%s, error=%v",
				req.SpecialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, specialist_id=%s",
		result.Booking.ID, result.Booking.SpecialistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
