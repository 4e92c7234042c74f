package get_available_slots

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamasat/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/lamasat/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	SpecialistID    uuid.UUID       `json:"specialistId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time string `json:"time"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time: slot.StartTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SpecialistID:    resp.SpecialistID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров URL и query
func ToUseCaseRequest(specialistID uuid.UUID, dateStr, serviceIDsStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var serviceIDs []uuid.UUID
	if serviceIDsStr != "" {
		for _, part := range strings.Split(serviceIDsStr, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			serviceIDs = append(serviceIDs, id)
		}
	}

	return &getAvailableSlots.Request{
		SpecialistID:    specialistID,
		Date:            date,
		ServiceIDs:      serviceIDs,
		DurationMinutes: durationMinutes,
	}, nil
}
