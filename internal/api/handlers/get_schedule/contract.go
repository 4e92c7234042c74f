package get_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

type SpecialistService interface {
	ListSchedule(ctx context.Context, specialistID uuid.UUID) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
