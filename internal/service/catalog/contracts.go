package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, service *domain.Service) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
