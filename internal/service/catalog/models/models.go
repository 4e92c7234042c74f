package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
)

var (
	// ErrValidation возвращается при некорректных полях запроса
	ErrValidation = errors.New("validation failed")
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	NameAr          string  `json:"nameAr"`
	NameEn          *string `json:"nameEn,omitempty"`
	DescriptionAr   *string `json:"descriptionAr,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceSAR        float64 `json:"priceSar"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Category        *string `json:"category,omitempty"`
	Active          *bool   `json:"active,omitempty"`
	DisplayOrder    int     `json:"displayOrder,omitempty"`
}

// Validate проверяет корректность полей запроса
func (r *CreateServiceRequest) Validate() error {
	if strings.TrimSpace(r.NameAr) == "" {
		return fmt.Errorf("%w: nameAr is required", ErrValidation)
	}

	if r.DurationMinutes < domain.MinServiceDurationMinutes || r.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrValidation, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if r.PriceSAR < 0 {
		return fmt.Errorf("%w: priceSar must not be negative", ErrValidation)
	}

	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &domain.Service{
		NameAr:          strings.TrimSpace(r.NameAr),
		NameEn:          r.NameEn,
		DescriptionAr:   r.DescriptionAr,
		DurationMinutes: r.DurationMinutes,
		PriceSAR:        r.PriceSAR,
		ImageURL:        r.ImageURL,
		Category:        r.Category,
		Active:          active,
		DisplayOrder:    r.DisplayOrder,
	}
}

// UpdateServiceRequest запрос на обновление услуги (полная замена полей)
type UpdateServiceRequest struct {
	NameAr          string  `json:"nameAr"`
	NameEn          *string `json:"nameEn,omitempty"`
	DescriptionAr   *string `json:"descriptionAr,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceSAR        float64 `json:"priceSar"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Category        *string `json:"category,omitempty"`
	Active          bool    `json:"active"`
	DisplayOrder    int     `json:"displayOrder"`
}

// Validate проверяет корректность полей запроса
func (r *UpdateServiceRequest) Validate() error {
	if strings.TrimSpace(r.NameAr) == "" {
		return fmt.Errorf("%w: nameAr is required", ErrValidation)
	}

	if r.DurationMinutes < domain.MinServiceDurationMinutes || r.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrValidation, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if r.PriceSAR < 0 {
		return fmt.Errorf("%w: priceSar must not be negative", ErrValidation)
	}

	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		NameAr:          strings.TrimSpace(r.NameAr),
		NameEn:          r.NameEn,
		DescriptionAr:   r.DescriptionAr,
		DurationMinutes: r.DurationMinutes,
		PriceSAR:        r.PriceSAR,
		ImageURL:        r.ImageURL,
		Category:        r.Category,
		Active:          r.Active,
		DisplayOrder:    r.DisplayOrder,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	NameAr          string    `json:"nameAr"`
	NameEn          *string   `json:"nameEn,omitempty"`
	DescriptionAr   *string   `json:"descriptionAr,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceSAR        float64   `json:"priceSar"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Active          bool      `json:"active"`
	DisplayOrder    int       `json:"displayOrder"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		NameAr:          s.NameAr,
		NameEn:          s.NameEn,
		DescriptionAr:   s.DescriptionAr,
		DurationMinutes: s.DurationMinutes,
		PriceSAR:        s.PriceSAR,
		ImageURL:        s.ImageURL,
		Category:        s.Category,
		Active:          s.Active,
		DisplayOrder:    s.DisplayOrder,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}
