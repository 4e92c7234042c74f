package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamasat/salon-booking-service/internal/domain"
	bookingRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/booking"
	"github.com/lamasat/salon-booking-service/internal/service/bookings/models"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

type stubRepo struct {
	booking   *domain.Booking
	bookings  []*domain.Booking
	getErr    error
	listErr   error
	cancelErr error
	updateErr error

	gotFilter *domain.BookingsFilter
	cancelled bool
	newStatus domain.BookingStatus
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.gotFilter = &filter
	return s.bookings, s.listErr
}

func (s *stubRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	s.newStatus = status
	return s.updateErr
}

func (s *stubRepo) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	s.cancelled = true
	return s.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		CustomerName:  "Noura",
		CustomerPhone: "+966500000002",
		SpecialistID:  uuid.New(),
		BookingDate:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeOfDay(10 * 60),
		EndTime:       types.TimeOfDay(11 * 60),
		Status:        status,
	}
}

func TestService_GetByID(t *testing.T) {
	booking := sampleBooking(domain.StatusConfirmed)
	svc := NewService(&stubRepo{booking: booking}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Track_RequiresPhone(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	_, err := svc.Track(context.Background(), &models.TrackBookingsRequest{CustomerPhone: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Track_IncludesCancelled(t *testing.T) {
	repo := &stubRepo{bookings: []*domain.Booking{sampleBooking(domain.StatusCancelled)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Track(context.Background(), &models.TrackBookingsRequest{CustomerPhone: "+966500000002"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	require.NotNil(t, repo.gotFilter)
	assert.True(t, repo.gotFilter.IncludeInactive)
	require.NotNil(t, repo.gotFilter.CustomerPhone)
	assert.Equal(t, "+966500000002", *repo.gotFilter.CustomerPhone)
}

func TestService_Cancel(t *testing.T) {
	repo := &stubRepo{booking: sampleBooking(domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), uuid.New(), &models.CancelBookingRequest{CancellationReason: "تغيير الموعد"})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
}

func TestService_Cancel_CompletedBooking(t *testing.T) {
	repo := &stubRepo{booking: sampleBooking(domain.StatusCompleted)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), uuid.New(), &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "no_show"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, repo.newStatus)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "paid"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_List_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	bad := "paid"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
