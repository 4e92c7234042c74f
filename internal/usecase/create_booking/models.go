package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	SpecialistID  uuid.UUID
	ServiceIDs    []uuid.UUID
	Date          time.Time
	StartTime     types.TimeOfDay
	Notes         *string
}

// Response созданное бронирование
type Response struct {
	Booking *domain.Booking
}
