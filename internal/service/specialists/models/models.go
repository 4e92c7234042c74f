package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

var (
	// ErrValidation возвращается при некорректных полях запроса
	ErrValidation = errors.New("validation failed")
)

// Request модели

// CreateSpecialistRequest запрос на создание специалиста
type CreateSpecialistRequest struct {
	Name         string      `json:"name"`
	BioAr        *string     `json:"bioAr,omitempty"`
	AvatarURL    *string     `json:"avatarUrl,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Active       *bool       `json:"active,omitempty"`
	DisplayOrder int         `json:"displayOrder,omitempty"`
	ServiceIDs   []uuid.UUID `json:"serviceIds,omitempty"`
}

// Validate проверяет корректность полей запроса
func (r *CreateSpecialistRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateSpecialistRequest) ToDomain() *domain.Specialist {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &domain.Specialist{
		Name:         strings.TrimSpace(r.Name),
		BioAr:        r.BioAr,
		AvatarURL:    r.AvatarURL,
		Phone:        r.Phone,
		Email:        r.Email,
		Active:       active,
		DisplayOrder: r.DisplayOrder,
		ServiceIDs:   r.ServiceIDs,
	}
}

// UpdateSpecialistRequest запрос на обновление специалиста (полная замена полей)
type UpdateSpecialistRequest struct {
	Name         string      `json:"name"`
	BioAr        *string     `json:"bioAr,omitempty"`
	AvatarURL    *string     `json:"avatarUrl,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Active       bool        `json:"active"`
	DisplayOrder int         `json:"displayOrder"`
	ServiceIDs   []uuid.UUID `json:"serviceIds"`
}

// Validate проверяет корректность полей запроса
func (r *UpdateSpecialistRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateSpecialistRequest) ToDomain() *domain.Specialist {
	return &domain.Specialist{
		Name:         strings.TrimSpace(r.Name),
		BioAr:        r.BioAr,
		AvatarURL:    r.AvatarURL,
		Phone:        r.Phone,
		Email:        r.Email,
		Active:       r.Active,
		DisplayOrder: r.DisplayOrder,
		ServiceIDs:   r.ServiceIDs,
	}
}

// AddScheduleSlotRequest запрос на добавление окна расписания
type AddScheduleSlotRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0=воскресенье ... 6=суббота
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "18:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *AddScheduleSlotRequest) ToDomain(specialistID uuid.UUID) (*domain.ScheduleSlot, error) {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrValidation)
	}

	start, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrValidation, err)
	}

	end, err := types.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrValidation, err)
	}

	if !start.Before(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrValidation)
	}

	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}

	return &domain.ScheduleSlot{
		SpecialistID: specialistID,
		DayOfWeek:    r.DayOfWeek,
		StartTime:    start,
		EndTime:      end,
		IsAvailable:  available,
	}, nil
}

// Response модели

// SpecialistResponse ответ с данными специалиста
type SpecialistResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	BioAr        *string     `json:"bioAr,omitempty"`
	AvatarURL    *string     `json:"avatarUrl,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Active       bool        `json:"active"`
	DisplayOrder int         `json:"displayOrder"`
	ServiceIDs   []uuid.UUID `json:"serviceIds"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// SpecialistListResponse ответ со списком специалистов
type SpecialistListResponse struct {
	Specialists []SpecialistResponse `json:"specialists"`
}

// ScheduleSlotResponse ответ с окном расписания
type ScheduleSlotResponse struct {
	ID           uuid.UUID `json:"id"`
	SpecialistID uuid.UUID `json:"specialistId"`
	DayOfWeek    int       `json:"dayOfWeek"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ScheduleResponse ответ с расписанием специалиста
type ScheduleResponse struct {
	SpecialistID uuid.UUID              `json:"specialistId"`
	Slots        []ScheduleSlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSpecialist конвертирует domain модель в DTO
func FromDomainSpecialist(s *domain.Specialist) *SpecialistResponse {
	if s == nil {
		return nil
	}

	serviceIDs := s.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []uuid.UUID{}
	}

	return &SpecialistResponse{
		ID:           s.ID,
		Name:         s.Name,
		BioAr:        s.BioAr,
		AvatarURL:    s.AvatarURL,
		Phone:        s.Phone,
		Email:        s.Email,
		Active:       s.Active,
		DisplayOrder: s.DisplayOrder,
		ServiceIDs:   serviceIDs,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSpecialistList конвертирует список domain моделей в DTO
func FromDomainSpecialistList(specialists []*domain.Specialist) *SpecialistListResponse {
	resp := &SpecialistListResponse{
		Specialists: make([]SpecialistResponse, 0, len(specialists)),
	}

	for _, specialist := range specialists {
		if specialistResp := FromDomainSpecialist(specialist); specialistResp != nil {
			resp.Specialists = append(resp.Specialists, *specialistResp)
		}
	}

	return resp
}

// FromDomainScheduleSlot конвертирует окно расписания в DTO
func FromDomainScheduleSlot(s *domain.ScheduleSlot) *ScheduleSlotResponse {
	if s == nil {
		return nil
	}

	return &ScheduleSlotResponse{
		ID:           s.ID,
		SpecialistID: s.SpecialistID,
		DayOfWeek:    s.DayOfWeek,
		StartTime:    s.StartTime.String(),
		EndTime:      s.EndTime.String(),
		IsAvailable:  s.IsAvailable,
		CreatedAt:    s.CreatedAt,
	}
}

// FromDomainSchedule конвертирует расписание специалиста в DTO
func FromDomainSchedule(specialistID uuid.UUID, slots []*domain.ScheduleSlot) *ScheduleResponse {
	resp := &ScheduleResponse{
		SpecialistID: specialistID,
		Slots:        make([]ScheduleSlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainScheduleSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
