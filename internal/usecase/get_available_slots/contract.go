package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// ListForWeekday получает доступные рабочие окна специалиста на день недели (0=воскресенье)
	ListForWeekday(ctx context.Context, specialistID uuid.UUID, dayOfWeek int) ([]*domain.ScheduleSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListWithFilter получает бронирования специалиста на конкретную дату
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
