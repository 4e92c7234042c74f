package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a salon service offered for booking
type Service struct {
	ID              uuid.UUID
	NameAr          string
	NameEn          *string
	DescriptionAr   *string
	DurationMinutes int
	PriceSAR        float64
	ImageURL        *string
	Category        *string
	Active          bool
	DisplayOrder    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if the service can be selected in the booking flow
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}
