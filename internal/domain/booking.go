package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
	StatusNoShow         BookingStatus = "no_show"
)

// ParseBookingStatus валидирует строковый статус
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPendingPayment, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking represents a customer booking with one or more salon services
type Booking struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	SpecialistID  uuid.UUID
	BookingDate   time.Time
	StartTime     types.TimeOfDay
	EndTime       types.TimeOfDay
	TotalAmount   float64
	Status        BookingStatus
	Notes         *string

	// Denormalized service line items for history
	Services []BookingService

	CancellationReason *string
	CancelledAt        *time.Time
	ConfirmedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingService denormalized service line item of a booking
type BookingService struct {
	ServiceID       uuid.UUID
	NameAr          string
	DurationMinutes int
	Price           float64
}

// IsActive returns true if the booking blocks the specialist's time
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiedRange возвращает занятый бронированием интервал времени
func (b *Booking) OccupiedRange() OccupiedRange {
	return OccupiedRange{Start: b.StartTime, End: b.EndTime}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	SpecialistID    *uuid.UUID     // Фильтр по специалисту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	CustomerPhone   *string        // Фильтр по телефону клиента (трекинг без аккаунта)
	IncludeInactive bool           // Включать ли отмененные и no-show
}
