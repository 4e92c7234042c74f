package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/dbmetrics"
	"github.com/lamasat/salon-booking-service/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"specialist_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
}

// Repository репозиторий недельных расписаний специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBySpecialist получает все окна расписания специалиста
// (включая выключенные, для админки)
func (r *Repository) ListBySpecialist(ctx context.Context, specialistID uuid.UUID) ([]*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("specialist_schedules").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanScheduleSlots(rows)
}

// ListForWeekday получает доступные окна расписания специалиста на день недели
// (0=воскресенье ... 6=суббота), отсортированные по времени начала.
// Это источник рабочих окон для расчета доступных слотов.
func (r *Repository) ListForWeekday(ctx context.Context, specialistID uuid.UUID, dayOfWeek int) ([]*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("specialist_schedules").
		Where(squirrel.Eq{
			"specialist_id": specialistID,
			"day_of_week":   dayOfWeek,
			"is_available":  true,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanScheduleSlots(rows)
}

// Create добавляет окно расписания
func (r *Repository) Create(ctx context.Context, slot *domain.ScheduleSlot) (*domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("specialist_schedules").
		Columns(
			"specialist_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_available",
		).
		Values(
			slot.SpecialistID,
			slot.DayOfWeek,
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// Delete удаляет окно расписания специалиста
func (r *Repository) Delete(ctx context.Context, specialistID, slotID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("specialist_schedules").
		Where(squirrel.Eq{
			"id":            slotID,
			"specialist_id": specialistID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleSlotNotFound
	}

	return nil
}

func scanScheduleSlots(rows *sql.Rows) ([]*domain.ScheduleSlot, error) {
	slots := make([]*domain.ScheduleSlot, 0)

	for rows.Next() {
		var slot domain.ScheduleSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.SpecialistID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanScheduleSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanScheduleSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
