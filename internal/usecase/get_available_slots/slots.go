package get_available_slots

import (
	"fmt"
	"time"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

// computeSlots вычисляет свободные слоты по рабочим окнам и занятым интервалам.
//
// Кандидаты генерируются с шагом, равным длительности услуги: первый слот
// начинается в начале окна, каждый следующий сразу после предыдущего.
// Слот [cursor, cursor+duration) попадает в результат, только если он целиком
// помещается в окно и не пересекается ни с одним занятым интервалом.
// Интервалы полуоткрытые: бронирование, заканчивающееся в 10:00, не мешает
// слоту, начинающемуся в 10:00.
//
// Некорректные окна и занятые интервалы (start >= end) пропускаются.
// Результат отсортирован по возрастанию в пределах каждого окна; окна
// приходят отсортированными из хранилища.
func computeSlots(windows []domain.WorkingWindow, occupied []domain.OccupiedRange, durationMinutes int) ([]types.TimeOfDay, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d minutes", ErrInvalidDuration, durationMinutes)
	}

	ranges := make([]domain.OccupiedRange, 0, len(occupied))
	for _, o := range occupied {
		if o.Valid() {
			ranges = append(ranges, o)
		}
	}

	slots := make([]types.TimeOfDay, 0)

	for _, w := range windows {
		if !w.Valid() {
			continue
		}

		for cursor := w.Start.Minutes(); cursor+durationMinutes <= w.End.Minutes(); cursor += durationMinutes {
			if overlapsAny(cursor, cursor+durationMinutes, ranges) {
				continue
			}
			slots = append(slots, types.TimeOfDay(cursor))
		}
	}

	return slots, nil
}

// overlapsAny проверяет строгое пересечение полуоткрытого интервала
// [start, end) хотя бы с одним занятым интервалом
func overlapsAny(start, end int, occupied []domain.OccupiedRange) bool {
	for _, o := range occupied {
		if o.Start.Minutes() < end && o.End.Minutes() > start {
			return true
		}
	}

	return false
}

// occupiedFromBookings собирает занятые интервалы из активных бронирований.
// Отмененные и неявки не блокируют время специалиста.
func occupiedFromBookings(bookings []*domain.Booking) []domain.OccupiedRange {
	occupied := make([]domain.OccupiedRange, 0, len(bookings))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		occupied = append(occupied, b.OccupiedRange())
	}

	return occupied
}

// windowsFromSchedule преобразует окна расписания в рабочие окна
func windowsFromSchedule(scheduleSlots []*domain.ScheduleSlot) []domain.WorkingWindow {
	windows := make([]domain.WorkingWindow, 0, len(scheduleSlots))

	for _, s := range scheduleSlots {
		windows = append(windows, s.Window())
	}

	return windows
}

// filterSameDaySlots убирает слоты, начало которых уже прошло,
// если запрошенная дата сегодняшняя. Для будущих дат список не меняется.
func filterSameDaySlots(slots []types.TimeOfDay, date, now time.Time) []types.TimeOfDay {
	if !isSameDay(date, now) {
		return slots
	}

	cutoff := types.FromClock(now)
	filtered := make([]types.TimeOfDay, 0, len(slots))

	for _, s := range slots {
		if s.After(cutoff) {
			filtered = append(filtered, s)
		}
	}

	return filtered
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
