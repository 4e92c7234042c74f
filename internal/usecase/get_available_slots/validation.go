package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req.SpecialistID == uuid.Nil {
		return fmt.Errorf("%w: specialist_id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 && req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: either service_ids or duration_minutes must be provided", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта бронирования
func validateDate(date, now time.Time) error {
	today := truncateToDay(now)
	requested := truncateToDay(date)

	if requested.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	horizon := today.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if requested.After(horizon) {
		return fmt.Errorf("%w: date %s is beyond %d days", ErrDateTooFarInFuture,
			date.Format(domain.DateFormat), domain.MaxAdvanceBookingDays)
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
