package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/pkg/types"
)

// Request запрос на получение доступных слотов.
// Длительность либо выводится из выбранных услуг (сумма), либо
// передается явно через DurationMinutes, когда услуги не указаны.
type Request struct {
	SpecialistID    uuid.UUID
	Date            time.Time
	ServiceIDs      []uuid.UUID
	DurationMinutes int
}

// Response ответ со свободными слотами на дату.
// Пустой список слотов это корректный результат, а не ошибка.
type Response struct {
	SpecialistID    uuid.UUID
	Date            time.Time
	DurationMinutes int
	Slots           []Slot
}

// Slot свободный слот для записи
type Slot struct {
	StartTime types.TimeOfDay
}
