package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// ListWithFilter внутри транзакции с фильтром по одной дате
	// блокирует строки через FOR UPDATE
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error)
}

// SpecialistRepository интерфейс репозитория специалистов
type SpecialistRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Specialist, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListForWeekday(ctx context.Context, specialistID uuid.UUID, dayOfWeek int) ([]*domain.ScheduleSlot, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в транзакции SERIALIZABLE
	// с повтором при конфликте сериализации
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
