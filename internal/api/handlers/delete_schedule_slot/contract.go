package delete_schedule_slot

import (
	"context"

	"github.com/google/uuid"
)

type SpecialistService interface {
	DeleteScheduleSlot(ctx context.Context, specialistID, slotID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
