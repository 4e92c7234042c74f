package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/internal/service/bookings/models"
	createBooking "github.com/lamasat/salon-booking-service/internal/usecase/create_booking"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail *string     `json:"customerEmail,omitempty"`
	SpecialistID  uuid.UUID   `json:"specialistId"`
	ServiceIDs    []uuid.UUID `json:"serviceIds"`
	Date          string      `json:"date"`      // "2026-01-15"
	StartTime     string      `json:"startTime"` // "10:00"
	Notes         *string     `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		SpecialistID:  r.SpecialistID,
		ServiceIDs:    r.ServiceIDs,
		Date:          date,
		StartTime:     startTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
