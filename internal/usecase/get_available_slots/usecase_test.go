package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

type stubScheduleRepo struct {
	slots []*domain.ScheduleSlot
	err   error
}

func (s *stubScheduleRepo) ListForWeekday(ctx context.Context, specialistID uuid.UUID, dayOfWeek int) ([]*domain.ScheduleSlot, error) {
	return s.slots, s.err
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubCatalogRepo struct {
	services []*domain.Service
	err      error
}

func (s *stubCatalogRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	return s.services, s.err
}

type stubSpecialistRepo struct {
	specialist *domain.Specialist
	err        error
}

func (s *stubSpecialistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Specialist, error) {
	return s.specialist, s.err
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

func newTestUsecase(t *testing.T, schedule *stubScheduleRepo, booking *stubBookingRepo, catalog *stubCatalogRepo, specialist *stubSpecialistRepo, now time.Time) *Usecase {
	t.Helper()
	return NewUsecase(schedule, booking, catalog, specialist, &fixedTimeProvider{now: now}, nopLogger{})
}

func TestUsecase_Execute_HappyPath(t *testing.T) {
	specialistID := uuid.New()
	serviceID := uuid.New()

	// Вторник 2026-03-10, запрошена среда
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	schedule := &stubScheduleRepo{slots: []*domain.ScheduleSlot{
		{SpecialistID: specialistID, DayOfWeek: 3, StartTime: tod(t, "09:00"), EndTime: tod(t, "12:00"), IsAvailable: true},
	}}
	booking := &stubBookingRepo{bookings: []*domain.Booking{
		{SpecialistID: specialistID, StartTime: tod(t, "10:00"), EndTime: tod(t, "11:00"), Status: domain.StatusConfirmed},
	}}
	catalog := &stubCatalogRepo{services: []*domain.Service{
		{ID: serviceID, NameAr: "قص شعر", DurationMinutes: 60, Active: true},
	}}
	specialist := &stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}}

	uc := newTestUsecase(t, schedule, booking, catalog, specialist, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SpecialistID: specialistID,
		Date:         date,
		ServiceIDs:   []uuid.UUID{serviceID},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[1].StartTime.String())
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestUsecase_Execute_NoScheduleReturnsEmpty(t *testing.T) {
	specialistID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 1)

	uc := newTestUsecase(t,
		&stubScheduleRepo{},
		&stubBookingRepo{},
		&stubCatalogRepo{},
		&stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SpecialistID:    specialistID,
		Date:            date,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUsecase_Execute_PastDate(t *testing.T) {
	specialistID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	uc := newTestUsecase(t,
		&stubScheduleRepo{},
		&stubBookingRepo{},
		&stubCatalogRepo{},
		&stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		SpecialistID:    specialistID,
		Date:            now.AddDate(0, 0, -1),
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUsecase_Execute_DateBeyondHorizon(t *testing.T) {
	specialistID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	uc := newTestUsecase(t,
		&stubScheduleRepo{},
		&stubBookingRepo{},
		&stubCatalogRepo{},
		&stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		SpecialistID:    specialistID,
		Date:            now.AddDate(0, 0, domain.MaxAdvanceBookingDays+1),
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestUsecase_Execute_UnknownService(t *testing.T) {
	specialistID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	uc := newTestUsecase(t,
		&stubScheduleRepo{},
		&stubBookingRepo{},
		&stubCatalogRepo{services: nil},
		&stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		SpecialistID: specialistID,
		Date:         now.AddDate(0, 0, 1),
		ServiceIDs:   []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUsecase_Execute_MissingInput(t *testing.T) {
	specialistID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	uc := newTestUsecase(t,
		&stubScheduleRepo{},
		&stubBookingRepo{},
		&stubCatalogRepo{},
		&stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}},
		now,
	)

	// Ни услуг, ни явной длительности
	_, err := uc.Execute(context.Background(), &Request{
		SpecialistID: specialistID,
		Date:         now.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUsecase_Execute_MultiServiceDurationIsSummed(t *testing.T) {
	specialistID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	schedule := &stubScheduleRepo{slots: []*domain.ScheduleSlot{
		{SpecialistID: specialistID, DayOfWeek: 3, StartTime: tod(t, "09:00"), EndTime: tod(t, "11:00"), IsAvailable: true},
	}}
	catalog := &stubCatalogRepo{services: []*domain.Service{
		{ID: firstID, DurationMinutes: 45, Active: true},
		{ID: secondID, DurationMinutes: 30, Active: true},
	}}

	uc := newTestUsecase(t, schedule, &stubBookingRepo{}, catalog,
		&stubSpecialistRepo{specialist: &domain.Specialist{ID: specialistID, Active: true}}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SpecialistID: specialistID,
		Date:         date,
		ServiceIDs:   []uuid.UUID{firstID, secondID},
	})
	require.NoError(t, err)
	assert.Equal(t, 75, resp.DurationMinutes)
	// 09:00 помещается (09:00-10:15), 10:15 уже нет
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
}
