package specialist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/dbmetrics"
	"github.com/lamasat/salon-booking-service/pkg/psqlbuilder"
)

var specialistColumns = []string{
	"id",
	"name",
	"bio_ar",
	"avatar_url",
	"phone",
	"email",
	"active",
	"display_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий специалистов салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает специалистов, отсортированных для витрины
// serviceID != nil ограничивает выдачу специалистами, выполняющими услугу
func (r *Repository) List(ctx context.Context, includeInactive bool, serviceID *uuid.UUID) ([]*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.name",
		"s.bio_ar",
		"s.avatar_url",
		"s.phone",
		"s.email",
		"s.active",
		"s.display_order",
		"s.created_at",
		"s.updated_at",
	).
		From("specialists s").
		OrderBy("s.display_order ASC, s.name ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.active": true})
	}

	if serviceID != nil {
		selectBuilder = selectBuilder.
			Join("specialist_services ss ON ss.specialist_id = s.id").
			Where(squirrel.Eq{"ss.service_id": *serviceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	specialists, err := scanSpecialists(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadServiceLinks(ctx, executor, specialists); err != nil {
		return nil, err
	}

	return specialists, nil
}

// GetByID получает специалиста по ID вместе со списком его услуг
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(specialistColumns...).
		From("specialists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	specialist, err := scanSpecialist(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpecialistNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan specialist: %v", ErrScanRow, err)
	}

	if err := r.loadServiceLinks(ctx, executor, []*domain.Specialist{specialist}); err != nil {
		return nil, err
	}

	return specialist, nil
}

// Create создает нового специалиста
// Связи с услугами вставляются отдельно через ReplaceServiceLinks
func (r *Repository) Create(ctx context.Context, specialist *domain.Specialist) (*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("specialists").
		Columns(
			"name",
			"bio_ar",
			"avatar_url",
			"phone",
			"email",
			"active",
			"display_order",
		).
		Values(
			specialist.Name,
			specialist.BioAr,
			specialist.AvatarURL,
			specialist.Phone,
			specialist.Email,
			specialist.Active,
			specialist.DisplayOrder,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&specialist.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	specialist.CreatedAt = createdAt.Time
	specialist.UpdatedAt = updatedAt.Time

	return specialist, nil
}

// Update обновляет специалиста целиком
func (r *Repository) Update(ctx context.Context, id uuid.UUID, specialist *domain.Specialist) (*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("specialists").
		Set("name", specialist.Name).
		Set("bio_ar", specialist.BioAr).
		Set("avatar_url", specialist.AvatarURL).
		Set("phone", specialist.Phone).
		Set("email", specialist.Email).
		Set("active", specialist.Active).
		Set("display_order", specialist.DisplayOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&specialist.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpecialistNotFound
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	specialist.CreatedAt = createdAt.Time
	specialist.UpdatedAt = updatedAt.Time

	return specialist, nil
}

// ReplaceServiceLinks заменяет набор услуг специалиста
// Вызывается внутри транзакции вместе с Create/Update
func (r *Repository) ReplaceServiceLinks(ctx context.Context, specialistID uuid.UUID, serviceIDs []uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("specialist_services").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceServiceLinks - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServiceLinks - delete links: %v", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("specialist_services").
		Columns("specialist_id", "service_id")

	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(specialistID, serviceID)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServiceLinks - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServiceLinks - insert links: %v", ErrExecQuery, err)
	}

	return nil
}

// loadServiceLinks загружает ID услуг для списка специалистов одним запросом
func (r *Repository) loadServiceLinks(ctx context.Context, executor DBExecutor, specialists []*domain.Specialist) error {
	if len(specialists) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(specialists))
	byID := make(map[uuid.UUID]*domain.Specialist, len(specialists))
	for i, s := range specialists {
		ids[i] = s.ID
		byID[s.ID] = s
	}

	query, args, err := psqlbuilder.Select("specialist_id", "service_id").
		From("specialist_services").
		Where(squirrel.Eq{"specialist_id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadServiceLinks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServiceLinks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var specialistID, serviceID uuid.UUID
		if err := rows.Scan(&specialistID, &serviceID); err != nil {
			return fmt.Errorf("%w: loadServiceLinks - scan row: %v", ErrScanRow, err)
		}
		if s, ok := byID[specialistID]; ok {
			s.ServiceIDs = append(s.ServiceIDs, serviceID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServiceLinks - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpecialist(row rowScanner) (*domain.Specialist, error) {
	var specialist domain.Specialist
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&specialist.ID,
		&specialist.Name,
		&specialist.BioAr,
		&specialist.AvatarURL,
		&specialist.Phone,
		&specialist.Email,
		&specialist.Active,
		&specialist.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	specialist.CreatedAt = createdAt.Time
	specialist.UpdatedAt = updatedAt.Time

	return &specialist, nil
}

func scanSpecialists(rows *sql.Rows) ([]*domain.Specialist, error) {
	specialists := make([]*domain.Specialist, 0)

	for rows.Next() {
		specialist, err := scanSpecialist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSpecialists - scan row: %v", ErrScanRow, err)
		}
		specialists = append(specialists, specialist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpecialists - rows error: %v", ErrScanRow, err)
	}

	return specialists, nil
}
