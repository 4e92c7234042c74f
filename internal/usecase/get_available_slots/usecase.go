package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lamasat/salon-booking-service/internal/domain"
	specialistRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/specialist"
)

// Usecase рассчитывает свободные слоты для записи к специалисту
type Usecase struct {
	scheduleRepo   ScheduleRepository
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	specialistRepo SpecialistRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUsecase создает новый экземпляр usecase расчета слотов
func NewUsecase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	specialist SpecialistRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		scheduleRepo:   scheduleRepo,
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		specialistRepo: specialist,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute выполняет расчет свободных слотов:
// 1. Валидация запроса и даты
// 2. Проверка существования специалиста
// 3. Определение длительности (сумма услуг или явная)
// 4. Загрузка рабочих окон на день недели и бронирований на дату
// 5. Расчет слотов и отсечение прошедших для сегодняшней даты
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		return nil, err
	}

	specialist, err := uc.specialistRepo.GetByID(ctx, req.SpecialistID)
	if err != nil {
		if errors.Is(err, specialistRepo.ErrSpecialistNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrSpecialistNotFound, req.SpecialistID)
		}
		uc.logger.Error("[GetAvailableSlots] Ошибка получения специалиста %s: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	dayOfWeek := domain.DayOfWeek(req.Date)

	scheduleSlots, err := uc.scheduleRepo.ListForWeekday(ctx, specialist.ID, dayOfWeek)
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Ошибка получения расписания специалиста %s: %v", specialist.ID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	response := &Response{
		SpecialistID:    specialist.ID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           make([]Slot, 0),
	}

	// Специалист не работает в этот день недели
	if len(scheduleSlots) == 0 {
		return response, nil
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		SpecialistID: &specialist.ID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
	})
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Ошибка получения бронирований специалиста %s на %s: %v",
			specialist.ID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots, err := computeSlots(windowsFromSchedule(scheduleSlots), occupiedFromBookings(bookings), duration)
	if err != nil {
		return nil, err
	}

	slots = filterSameDaySlots(slots, req.Date, now)

	for _, s := range slots {
		response.Slots = append(response.Slots, Slot{StartTime: s})
	}

	uc.logger.Info("[GetAvailableSlots] Специалист %s, дата %s, длительность %d мин: %d свободных слотов",
		specialist.ID, req.Date.Format(domain.DateFormat), duration, len(response.Slots))

	return response, nil
}

// resolveDuration определяет длительность записи: сумма длительностей
// выбранных услуг либо явная длительность из запроса
func (uc *Usecase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if len(req.ServiceIDs) == 0 {
		return req.DurationMinutes, nil
	}

	services, err := uc.catalogRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Ошибка получения услуг: %v", err)
		return 0, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	found := make(map[string]*domain.Service, len(services))
	for _, s := range services {
		found[s.ID.String()] = s
	}

	total := 0
	for _, id := range req.ServiceIDs {
		service, ok := found[id.String()]
		if !ok {
			return 0, fmt.Errorf("%w: id %s", ErrServiceNotFound, id)
		}
		if !service.IsBookable() {
			return 0, fmt.Errorf("%w: service %s is not active", ErrServiceNotFound, id)
		}
		total += service.DurationMinutes
	}

	if total <= 0 {
		return 0, fmt.Errorf("%w: total duration is %d minutes", ErrInvalidDuration, total)
	}

	return total, nil
}
