package domain

import (
	"time"

	"github.com/google/uuid"
)

// Specialist represents a salon specialist who can be booked
type Specialist struct {
	ID           uuid.UUID
	Name         string
	BioAr        *string
	AvatarURL    *string
	Phone        *string
	Email        *string
	Active       bool
	DisplayOrder int

	// Услуги, которые выполняет специалист (таблица specialist_services)
	ServiceIDs []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProvidesService returns true if the specialist is linked to the given service
func (s *Specialist) ProvidesService(serviceID uuid.UUID) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
