package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer_name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customer_phone exceeds %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	if req.CustomerEmail != nil && !strings.Contains(*req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customer_email is malformed", ErrInvalidInput)
	}

	if req.SpecialistID == uuid.Nil {
		return fmt.Errorf("%w: specialist_id is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: start_time is out of range", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateTime проверяет, что дата и время записи не в прошлом
// и не дальше горизонта бронирования
func validateDateTime(date time.Time, startTime types.TimeOfDay, now time.Time) error {
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

	if requested.Equal(today) && !startTime.After(types.FromClock(now)) {
		return fmt.Errorf("%w: time %s has already passed", ErrInvalidDate, startTime)
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
