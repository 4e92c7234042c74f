package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/catalog"
	"github.com/lamasat/salon-booking-service/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List получает список услуг
// Публичная витрина показывает только активные, админка видит все
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Create создает новую услугу (админка)
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.catalogRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%s name=%s", created.ID, created.NameAr)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу (админка)
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.catalogRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated service id=%s", id)
	return models.FromDomainService(updated), nil
}
