package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/dbmetrics"
	"github.com/lamasat/salon-booking-service/pkg/psqlbuilder"
)

// exclusionViolation код PostgreSQL для нарушения exclusion constraint
// (bookings_no_overlap защищает от двойного бронирования на уровне БД)
const exclusionViolation = "23P01"

var bookingColumns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"specialist_id",
	"booking_date",
	"start_time",
	"end_time",
	"total_amount",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"confirmed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с денормализованными позициями услуг.
// Если в контексте передана активная транзакция, использует её: при создании
// через usecase это обязательно: вставка в bookings и booking_services должна
// быть атомарной, а проверка занятости слота выполняется в той же транзакции.
//
// Нарушение exclusion constraint на (specialist_id, booking_date, временной
// интервал) транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"customer_phone",
			"customer_email",
			"specialist_id",
			"booking_date",
			"start_time",
			"end_time",
			"total_amount",
			"status",
			"notes",
		).
		Values(
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.SpecialistID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.TotalAmount,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if len(booking.Services) > 0 {
		insertBuilder := psqlbuilder.Insert("booking_services").
			Columns("booking_id", "service_id", "name_ar", "duration_minutes", "price")

		for _, svc := range booking.Services {
			insertBuilder = insertBuilder.Values(
				booking.ID,
				svc.ServiceID,
				svc.NameAr,
				svc.DurationMinutes,
				svc.Price,
			)
		}

		query, args, err := insertBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert services: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с позициями услуг
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadServices(ctx, executor, []*domain.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по специалисту, периоду, статусу и телефону клиента.
//
// Если фильтр указывает одну конкретную дату и вызов выполняется внутри
// транзакции, строки блокируются через FOR UPDATE. Так устроен путь
// создания бронирования, защищающий от гонки двойного бронирования.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.SpecialistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialist_id": *filter.SpecialistID})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.CustomerPhone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_phone": *filter.CustomerPhone})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	if singleDate {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	// Блокировка строк дня при проверке занятости в транзакции создания
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadServices(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
// При переводе в confirmed проставляет confirmed_at
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusConfirmed {
		updateBuilder = updateBuilder.Set("confirmed_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// loadServices загружает позиции услуг для списка бронирований одним запросом
func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(bookings))
	byID := make(map[uuid.UUID]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select(
		"booking_id",
		"service_id",
		"name_ar",
		"duration_minutes",
		"price",
	).
		From("booking_services").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id, service_id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID uuid.UUID
		var svc domain.BookingService

		if err := rows.Scan(&bookingID, &svc.ServiceID, &svc.NameAr, &svc.DurationMinutes, &svc.Price); err != nil {
			return fmt.Errorf("%w: loadServices - scan row: %v", ErrScanRow, err)
		}

		if b, ok := byID[bookingID]; ok {
			b.Services = append(b.Services, svc)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.SpecialistID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalAmount,
		&booking.Status,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.ConfirmedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == exclusionViolation
	}
	return false
}
