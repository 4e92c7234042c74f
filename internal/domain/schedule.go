package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/pkg/types"
)

// ScheduleSlot одно окно рабочего времени специалиста в недельном расписании
// День недели хранится в соглашении 0=воскресенье ... 6=суббота
type ScheduleSlot struct {
	ID           uuid.UUID
	SpecialistID uuid.UUID
	DayOfWeek    int
	StartTime    types.TimeOfDay
	EndTime      types.TimeOfDay
	IsAvailable  bool
	CreatedAt    time.Time
}

// Window возвращает рабочее окно этого слота расписания
func (s *ScheduleSlot) Window() WorkingWindow {
	return WorkingWindow{Start: s.StartTime, End: s.EndTime}
}

// WorkingWindow непрерывный интервал рабочего времени в пределах одного дня
// Инвариант: Start < End
type WorkingWindow struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// Valid проверяет инвариант окна
func (w WorkingWindow) Valid() bool {
	return w.Start.Valid() && w.End.Valid() && w.Start < w.End
}

// OccupiedRange интервал времени, занятый существующим бронированием
// Интервал полуоткрытый: [Start, End)
type OccupiedRange struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// Valid проверяет, что интервал может представлять реальное бронирование
// Пустые и перевернутые интервалы считаются некорректными
func (r OccupiedRange) Valid() bool {
	return r.Start.Valid() && r.End.Valid() && r.Start < r.End
}
