package add_schedule_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

type SpecialistService interface {
	AddScheduleSlot(ctx context.Context, specialistID uuid.UUID, req *models.AddScheduleSlotRequest) (*models.ScheduleSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
