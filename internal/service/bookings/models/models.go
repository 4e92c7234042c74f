package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TrackBookingsRequest запрос на поиск бронирований по телефону клиента
type TrackBookingsRequest struct {
	CustomerPhone string `json:"customerPhone"`
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией (админка)
type ListBookingsRequest struct {
	SpecialistID    *uuid.UUID `json:"specialistId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		SpecialistID:    r.SpecialistID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail *string   `json:"customerEmail,omitempty"`
	SpecialistID  uuid.UUID `json:"specialistId"`
	BookingDate   string    `json:"bookingDate"` // "2026-01-15"
	StartTime     string    `json:"startTime"`   // "10:00"
	EndTime       string    `json:"endTime"`     // "11:30"
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`

	Services []BookingServiceLine `json:"services"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601
	ConfirmedAt        *string `json:"confirmedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingServiceLine денормализованная строка услуги бронирования
type BookingServiceLine struct {
	ServiceID       uuid.UUID `json:"serviceId"`
	NameAr          string    `json:"nameAr"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		SpecialistID:       b.SpecialistID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		TotalAmount:        b.TotalAmount,
		Status:             string(b.Status),
		Notes:              b.Notes,
		Services:           make([]BookingServiceLine, 0, len(b.Services)),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	for _, s := range b.Services {
		resp.Services = append(resp.Services, BookingServiceLine{
			ServiceID:       s.ServiceID,
			NameAr:          s.NameAr,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	if b.ConfirmedAt != nil {
		confirmedStr := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}

	return s, nil
}
