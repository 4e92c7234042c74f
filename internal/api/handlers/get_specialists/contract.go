package get_specialists

import (
	"context"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

type SpecialistService interface {
	List(ctx context.Context, includeInactive bool, serviceID *uuid.UUID) (*models.SpecialistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
