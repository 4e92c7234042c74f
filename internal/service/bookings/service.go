package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	bookingRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/booking"
	"github.com/lamasat/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией (админка)
// Поддерживает фильтрацию по специалисту, периоду, статусу
// и включение отмененных бронирований
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Track получает бронирования клиента по номеру телефона.
// Публичная операция для отслеживания записи без аккаунта.
func (s *Service) Track(ctx context.Context, req *models.TrackBookingsRequest) (*models.BookingListResponse, error) {
	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		CustomerPhone:   &phone,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("Track: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Track - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Track: fetched %d bookings for phone=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить можно только бронирования в статусах pending_payment и confirmed
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования (админка)
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}
