package update_specialist

import (
	"context"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

type SpecialistService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateSpecialistRequest) (*models.SpecialistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
