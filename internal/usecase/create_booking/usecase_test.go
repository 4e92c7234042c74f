package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamasat/salon-booking-service/internal/domain"
	bookingRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/booking"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

type stubBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	booking.ID = uuid.New()
	s.created = booking
	return booking, nil
}

func (s *stubBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.existing, nil
}

type stubCatalogRepo struct {
	services []*domain.Service
}

func (s *stubCatalogRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	return s.services, nil
}

type stubSpecialistRepo struct {
	specialist *domain.Specialist
	err        error
}

func (s *stubSpecialistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Specialist, error) {
	return s.specialist, s.err
}

type stubScheduleRepo struct {
	slots []*domain.ScheduleSlot
}

func (s *stubScheduleRepo) ListForWeekday(ctx context.Context, specialistID uuid.UUID, dayOfWeek int) ([]*domain.ScheduleSlot, error) {
	return s.slots, nil
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func tod(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

type fixture struct {
	specialistID uuid.UUID
	serviceID    uuid.UUID
	now          time.Time
	date         time.Time
	booking      *stubBookingRepo
	schedule     *stubScheduleRepo
	uc           *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		specialistID: uuid.New(),
		serviceID:    uuid.New(),
		now:          time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		date:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		booking:      &stubBookingRepo{},
	}

	f.schedule = &stubScheduleRepo{slots: []*domain.ScheduleSlot{
		{SpecialistID: f.specialistID, DayOfWeek: 3, StartTime: tod(t, "09:00"), EndTime: tod(t, "18:00"), IsAvailable: true},
	}}

	catalog := &stubCatalogRepo{services: []*domain.Service{
		{ID: f.serviceID, NameAr: "قص شعر", DurationMinutes: 60, PriceSAR: 150, Active: true},
	}}
	specialist := &stubSpecialistRepo{specialist: &domain.Specialist{
		ID:         f.specialistID,
		Active:     true,
		ServiceIDs: []uuid.UUID{f.serviceID},
	}}

	f.uc = NewUsecase(f.booking, catalog, specialist, f.schedule,
		inlineTxManager{}, &fixedTimeProvider{now: f.now}, nopLogger{})

	return f
}

func (f *fixture) request() *Request {
	return &Request{
		CustomerName:  "Sara",
		CustomerPhone: "+966500000001",
		SpecialistID:  f.specialistID,
		ServiceIDs:    []uuid.UUID{f.serviceID},
		Date:          f.date,
		StartTime:     types.TimeOfDay(10 * 60),
	}
}

func TestUsecase_Execute_CreatesBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, domain.StatusPendingPayment, b.Status)
	assert.Equal(t, "10:00", b.StartTime.String())
	assert.Equal(t, "11:00", b.EndTime.String())
	assert.Equal(t, 150.0, b.TotalAmount)
	require.Len(t, b.Services, 1)
	assert.Equal(t, f.serviceID, b.Services[0].ServiceID)
}

func TestUsecase_Execute_SlotConflict(t *testing.T) {
	f := newFixture(t)
	f.booking.existing = []*domain.Booking{
		{
			ID:        uuid.New(),
			StartTime: tod(t, "10:30"),
			EndTime:   tod(t, "11:30"),
			Status:    domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUsecase_Execute_CancelledBookingDoesNotConflict(t *testing.T) {
	f := newFixture(t)
	f.booking.existing = []*domain.Booking{
		{
			ID:        uuid.New(),
			StartTime: tod(t, "10:00"),
			EndTime:   tod(t, "11:00"),
			Status:    domain.StatusCancelled,
		},
	}

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.NoError(t, err)
}

func TestUsecase_Execute_TouchingBookingDoesNotConflict(t *testing.T) {
	f := newFixture(t)
	f.booking.existing = []*domain.Booking{
		{
			ID:        uuid.New(),
			StartTime: tod(t, "09:00"),
			EndTime:   tod(t, "10:00"),
			Status:    domain.StatusConfirmed,
		},
	}

	// Новая запись начинается ровно в конце существующей
	_, err := f.uc.Execute(context.Background(), f.request())
	assert.NoError(t, err)
}

func TestUsecase_Execute_OutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.StartTime = tod(t, "17:30") // 17:30 + 60 минут выходит за окно до 18:00

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestUsecase_Execute_DatabaseConstraintMapsToConflict(t *testing.T) {
	f := newFixture(t)
	f.booking.createErr = bookingRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUsecase_Execute_ServiceNotProvidedBySpecialist(t *testing.T) {
	f := newFixture(t)

	otherService := uuid.New()
	catalog := &stubCatalogRepo{services: []*domain.Service{
		{ID: otherService, NameAr: "مكياج", DurationMinutes: 30, PriceSAR: 100, Active: true},
	}}
	specialist := &stubSpecialistRepo{specialist: &domain.Specialist{
		ID:         f.specialistID,
		Active:     true,
		ServiceIDs: []uuid.UUID{f.serviceID},
	}}
	uc := NewUsecase(f.booking, catalog, specialist, f.schedule,
		inlineTxManager{}, &fixedTimeProvider{now: f.now}, nopLogger{})

	req := f.request()
	req.ServiceIDs = []uuid.UUID{otherService}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotProvided)
}

func TestUsecase_Execute_PastTimeSameDay(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Date = f.now // сегодня
	req.StartTime = tod(t, "08:00")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUsecase_Execute_MissingCustomerName(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.CustomerName = "   "

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
