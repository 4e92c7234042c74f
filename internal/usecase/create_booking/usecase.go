package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	bookingRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/booking"
	specialistRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/specialist"
)

// Usecase создает бронирование с защитой от двойного бронирования.
// Финальная проверка пересечений выполняется в транзакции SERIALIZABLE
// с блокировкой бронирований дня через FOR UPDATE, а ограничение
// исключения в БД закрывает гонку окончательно.
type Usecase struct {
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	specialistRepo SpecialistRepository
	scheduleRepo   ScheduleRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUsecase создает новый экземпляр usecase создания бронирования
func NewUsecase(
	booking BookingRepository,
	catalog CatalogRepository,
	specialist SpecialistRepository,
	schedule ScheduleRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo:    booking,
		catalogRepo:    catalog,
		specialistRepo: specialist,
		scheduleRepo:   schedule,
		txManager:      txManager,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute создает бронирование:
// 1. Валидация запроса, даты и времени
// 2. Проверка специалиста и услуг, расчет длительности и суммы
// 3. В транзакции: проверка рабочего окна, проверка пересечений, вставка
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDateTime(req.Date, req.StartTime, now); err != nil {
		return nil, err
	}

	specialist, err := uc.getSpecialist(ctx, req.SpecialistID)
	if err != nil {
		return nil, err
	}

	lineItems, totalAmount, duration, err := uc.resolveServices(ctx, specialist, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: booking does not fit into the day: %v", ErrInvalidInput, err)
	}

	booking := &domain.Booking{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		SpecialistID:  specialist.ID,
		BookingDate:   req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		TotalAmount:   totalAmount,
		Status:        domain.StatusPendingPayment,
		Notes:         req.Notes,
		Services:      lineItems,
	}

	var created *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkWorkingWindow(txCtx, booking); err != nil {
			return err
		}

		if err := uc.checkSlotFree(txCtx, booking); err != nil {
			return err
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: rejected by database constraint", ErrSlotConflict)
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		uc.logger.Error("[CreateBooking] Ошибка создания бронирования для специалиста %s: %v", specialist.ID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("[CreateBooking] Создано бронирование %s: специалист %s, %s %s-%s, сумма %.2f",
		created.ID, specialist.ID, created.BookingDate.Format(domain.DateFormat),
		created.StartTime, created.EndTime, created.TotalAmount)

	return &Response{Booking: created}, nil
}

func (uc *Usecase) getSpecialist(ctx context.Context, id uuid.UUID) (*domain.Specialist, error) {
	specialist, err := uc.specialistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, specialistRepo.ErrSpecialistNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrSpecialistNotFound, id)
		}
		uc.logger.Error("[CreateBooking] Ошибка получения специалиста %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	if !specialist.Active {
		return nil, fmt.Errorf("%w: specialist %s is not active", ErrSpecialistNotFound, id)
	}

	return specialist, nil
}

// resolveServices проверяет услуги и собирает строки бронирования.
// Длительность записи равна сумме длительностей услуг.
func (uc *Usecase) resolveServices(
	ctx context.Context,
	specialist *domain.Specialist,
	serviceIDs []uuid.UUID,
) ([]domain.BookingService, float64, int, error) {
	services, err := uc.catalogRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		uc.logger.Error("[CreateBooking] Ошибка получения услуг: %v", err)
		return nil, 0, 0, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	found := make(map[uuid.UUID]*domain.Service, len(services))
	for _, s := range services {
		found[s.ID] = s
	}

	lineItems := make([]domain.BookingService, 0, len(serviceIDs))
	totalAmount := 0.0
	duration := 0

	for _, id := range serviceIDs {
		service, ok := found[id]
		if !ok {
			return nil, 0, 0, fmt.Errorf("%w: id %s", ErrServiceNotFound, id)
		}
		if !service.IsBookable() {
			return nil, 0, 0, fmt.Errorf("%w: service %s is not active", ErrServiceNotFound, id)
		}
		if !specialist.ProvidesService(id) {
			return nil, 0, 0, fmt.Errorf("%w: specialist %s does not provide service %s",
				ErrServiceNotProvided, specialist.ID, id)
		}

		lineItems = append(lineItems, domain.BookingService{
			ServiceID:       service.ID,
			NameAr:          service.NameAr,
			DurationMinutes: service.DurationMinutes,
			Price:           service.PriceSAR,
		})
		totalAmount += service.PriceSAR
		duration += service.DurationMinutes
	}

	if duration <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: total duration is %d minutes", ErrInvalidInput, duration)
	}

	return lineItems, totalAmount, duration, nil
}

// checkWorkingWindow проверяет, что запись целиком помещается
// в одно из рабочих окон специалиста на этот день недели
func (uc *Usecase) checkWorkingWindow(ctx context.Context, booking *domain.Booking) error {
	dayOfWeek := domain.DayOfWeek(booking.BookingDate)

	scheduleSlots, err := uc.scheduleRepo.ListForWeekday(ctx, booking.SpecialistID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	for _, s := range scheduleSlots {
		window := s.Window()
		if !window.Valid() {
			continue
		}
		if !booking.StartTime.Before(window.Start) && !window.End.Before(booking.EndTime) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s-%s on %s", ErrOutsideWorkingHours,
		booking.StartTime, booking.EndTime, booking.BookingDate.Format(domain.DateFormat))
}

// checkSlotFree перечитывает бронирования дня под блокировкой FOR UPDATE
// и проверяет строгое пересечение полуоткрытых интервалов
func (uc *Usecase) checkSlotFree(ctx context.Context, booking *domain.Booking) error {
	existing, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		SpecialistID: &booking.SpecialistID,
		StartDate:    &booking.BookingDate,
		EndDate:      &booking.BookingDate,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
	}

	for _, other := range existing {
		if !other.IsActive() {
			continue
		}
		if other.StartTime.Before(booking.EndTime) && booking.StartTime.Before(other.EndTime) {
			return fmt.Errorf("%w: overlaps booking %s (%s-%s)",
				ErrSlotConflict, other.ID, other.StartTime, other.EndTime)
		}
	}

	return nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrOutsideWorkingHours) ||
		errors.Is(err, ErrSlotConflict) ||
		errors.Is(err, ErrSpecialistNotFound) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrServiceNotProvided) ||
		errors.Is(err, ErrInvalidInput)
}
