package specialists

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	scheduleRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/schedule"
	specialistRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/specialist"
	"github.com/lamasat/salon-booking-service/internal/service/specialists/models"
)

// Service сервис специалистов и их недельных расписаний
type Service struct {
	specialistRepo SpecialistRepository
	scheduleRepo   ScheduleRepository
	catalogRepo    CatalogRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса специалистов
func NewService(
	specialist SpecialistRepository,
	schedule ScheduleRepository,
	catalog CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		specialistRepo: specialist,
		scheduleRepo:   schedule,
		catalogRepo:    catalog,
		txManager:      txManager,
		logger:         logger,
	}
}

// List получает список специалистов
// Опционально фильтрует по услуге (для выбора мастера в форме записи)
func (s *Service) List(ctx context.Context, includeInactive bool, serviceID *uuid.UUID) (*models.SpecialistListResponse, error) {
	specialists, err := s.specialistRepo.List(ctx, includeInactive, serviceID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpecialistList(specialists), nil
}

// GetByID получает специалиста по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.SpecialistResponse, error) {
	specialist, err := s.specialistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, specialistRepo.ErrSpecialistNotFound) {
			s.logger.Warn("GetByID: specialist id=%s not found", id)
			return nil, ErrSpecialistNotFound
		}
		s.logger.Error("GetByID: repository error for specialist id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpecialist(specialist), nil
}

// Create создает специалиста вместе с привязками услуг (админка)
// Вставка специалиста и привязок выполняется в одной транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateSpecialistRequest) (*models.SpecialistResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkServicesExist(ctx, req.ServiceIDs); err != nil {
		return nil, err
	}

	specialist := req.ToDomain()

	var created *domain.Specialist

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		created, err = s.specialistRepo.Create(txCtx, specialist)
		if err != nil {
			return fmt.Errorf("create specialist: %w", err)
		}

		if len(specialist.ServiceIDs) > 0 {
			if err := s.specialistRepo.ReplaceServiceLinks(txCtx, created.ID, specialist.ServiceIDs); err != nil {
				return fmt.Errorf("link services: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Create: transaction error: %v", err)
		return nil, fmt.Errorf("%w: Create - transaction error: %v", ErrInternal, err)
	}

	created.ServiceIDs = specialist.ServiceIDs

	s.logger.Info("Create: created specialist id=%s name=%s", created.ID, created.Name)
	return models.FromDomainSpecialist(created), nil
}

// Update обновляет специалиста и заменяет привязки услуг (админка)
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateSpecialistRequest) (*models.SpecialistResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for specialist id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkServicesExist(ctx, req.ServiceIDs); err != nil {
		return nil, err
	}

	specialist := req.ToDomain()

	var updated *domain.Specialist

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		updated, err = s.specialistRepo.Update(txCtx, id, specialist)
		if err != nil {
			return fmt.Errorf("update specialist: %w", err)
		}

		if err := s.specialistRepo.ReplaceServiceLinks(txCtx, id, specialist.ServiceIDs); err != nil {
			return fmt.Errorf("link services: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, specialistRepo.ErrSpecialistNotFound) {
			s.logger.Warn("Update: specialist id=%s not found", id)
			return nil, ErrSpecialistNotFound
		}
		s.logger.Error("Update: transaction error for specialist id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - transaction error: %v", ErrInternal, err)
	}

	updated.ServiceIDs = specialist.ServiceIDs

	s.logger.Info("Update: updated specialist id=%s", id)
	return models.FromDomainSpecialist(updated), nil
}

// ListSchedule получает недельное расписание специалиста (админка)
func (s *Service) ListSchedule(ctx context.Context, specialistID uuid.UUID) (*models.ScheduleResponse, error) {
	if _, err := s.GetByID(ctx, specialistID); err != nil {
		return nil, err
	}

	slots, err := s.scheduleRepo.ListBySpecialist(ctx, specialistID)
	if err != nil {
		s.logger.Error("ListSchedule: repository error for specialist id=%s: %v", specialistID, err)
		return nil, fmt.Errorf("%w: ListSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(specialistID, slots), nil
}

// AddScheduleSlot добавляет окно расписания специалисту (админка)
// Новое окно не должно пересекаться с существующими окнами того же дня
func (s *Service) AddScheduleSlot(ctx context.Context, specialistID uuid.UUID, req *models.AddScheduleSlotRequest) (*models.ScheduleSlotResponse, error) {
	if _, err := s.GetByID(ctx, specialistID); err != nil {
		return nil, err
	}

	slot, err := req.ToDomain(specialistID)
	if err != nil {
		s.logger.Warn("AddScheduleSlot: validation failed for specialist id=%s: %v", specialistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.scheduleRepo.ListBySpecialist(ctx, specialistID)
	if err != nil {
		s.logger.Error("AddScheduleSlot: repository error for specialist id=%s: %v", specialistID, err)
		return nil, fmt.Errorf("%w: AddScheduleSlot - repository error: %v", ErrInternal, err)
	}

	for _, other := range existing {
		if other.DayOfWeek != slot.DayOfWeek {
			continue
		}
		if other.StartTime.Before(slot.EndTime) && slot.StartTime.Before(other.EndTime) {
			s.logger.Warn("AddScheduleSlot: overlap with slot id=%s for specialist id=%s", other.ID, specialistID)
			return nil, fmt.Errorf("%w: %s-%s on day %d", ErrScheduleOverlap,
				other.StartTime, other.EndTime, other.DayOfWeek)
		}
	}

	created, err := s.scheduleRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("AddScheduleSlot: repository error for specialist id=%s: %v", specialistID, err)
		return nil, fmt.Errorf("%w: AddScheduleSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddScheduleSlot: added slot id=%s for specialist id=%s day=%d %s-%s",
		created.ID, specialistID, created.DayOfWeek, created.StartTime, created.EndTime)
	return models.FromDomainScheduleSlot(created), nil
}

// DeleteScheduleSlot удаляет окно расписания специалиста (админка)
func (s *Service) DeleteScheduleSlot(ctx context.Context, specialistID, slotID uuid.UUID) error {
	if err := s.scheduleRepo.Delete(ctx, specialistID, slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleSlotNotFound) {
			s.logger.Warn("DeleteScheduleSlot: slot id=%s not found for specialist id=%s", slotID, specialistID)
			return ErrScheduleSlotNotFound
		}
		s.logger.Error("DeleteScheduleSlot: repository error for slot id=%s: %v", slotID, err)
		return fmt.Errorf("%w: DeleteScheduleSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteScheduleSlot: deleted slot id=%s for specialist id=%s", slotID, specialistID)
	return nil
}

// checkServicesExist проверяет, что все привязываемые услуги существуют
func (s *Service) checkServicesExist(ctx context.Context, serviceIDs []uuid.UUID) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	services, err := s.catalogRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		s.logger.Error("checkServicesExist: repository error: %v", err)
		return fmt.Errorf("%w: checkServicesExist - repository error: %v", ErrInternal, err)
	}

	found := make(map[uuid.UUID]struct{}, len(services))
	for _, service := range services {
		found[service.ID] = struct{}{}
	}

	for _, id := range serviceIDs {
		if _, ok := found[id]; !ok {
			s.logger.Warn("checkServicesExist: service id=%s not found", id)
			return fmt.Errorf("%w: id %s", ErrServiceNotFound, id)
		}
	}

	return nil
}
