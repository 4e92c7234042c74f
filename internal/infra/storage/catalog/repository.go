package catalog

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

var serviceColumns = []string{
	"id",
	"name_ar",
	"name_en",
	"description_ar",
	"duration_min",
	"price_sar",
	"image_url",
	"category",
	"active",
	"display_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает услуги, отсортированные для витрины
// includeInactive=false скрывает выключенные услуги (публичная выдача)
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("display_order ASC, name_ar ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
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

	return scanServices(rows)
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// GetByIDs получает услуги по списку ID (выбор нескольких услуг при бронировании)
// Отсутствующие ID не являются ошибкой, вызывающий сверяет длину результата
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("display_order ASC, name_ar ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"name_ar",
			"name_en",
			"description_ar",
			"duration_min",
			"price_sar",
			"image_url",
			"category",
			"active",
			"display_order",
		).
		Values(
			service.NameAr,
			service.NameEn,
			service.DescriptionAr,
			service.DurationMinutes,
			service.PriceSAR,
			service.ImageURL,
			service.Category,
			service.Active,
			service.DisplayOrder,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// Update обновляет услугу целиком
func (r *Repository) Update(ctx context.Context, id uuid.UUID, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name_ar", service.NameAr).
		Set("name_en", service.NameEn).
		Set("description_ar", service.DescriptionAr).
		Set("duration_min", service.DurationMinutes).
		Set("price_sar", service.PriceSAR).
		Set("image_url", service.ImageURL).
		Set("category", service.Category).
		Set("active", service.Active).
		Set("display_order", service.DisplayOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.NameAr,
		&service.NameEn,
		&service.DescriptionAr,
		&service.DurationMinutes,
		&service.PriceSAR,
		&service.ImageURL,
		&service.Category,
		&service.Active,
		&service.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

func scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
