package specialists

import (
	"context"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

// SpecialistRepository интерфейс репозитория специалистов
type SpecialistRepository interface {
	List(ctx context.Context, includeInactive bool, serviceID *uuid.UUID) ([]*domain.Specialist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Specialist, error)
	Create(ctx context.Context, specialist *domain.Specialist) (*domain.Specialist, error)
	Update(ctx context.Context, id uuid.UUID, specialist *domain.Specialist) (*domain.Specialist, error)
	ReplaceServiceLinks(ctx context.Context, specialistID uuid.UUID, serviceIDs []uuid.UUID) error
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListBySpecialist(ctx context.Context, specialistID uuid.UUID) ([]*domain.ScheduleSlot, error)
	Create(ctx context.Context, slot *domain.ScheduleSlot) (*domain.ScheduleSlot, error)
	Delete(ctx context.Context, specialistID, slotID uuid.UUID) error
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
