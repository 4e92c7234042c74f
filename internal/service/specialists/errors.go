package specialists

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден
	ErrSpecialistNotFound = errors.New("specialist not found")

	// ErrServiceNotFound возвращается, когда привязываемая услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrScheduleSlotNotFound возвращается, когда окно расписания не найдено
	ErrScheduleSlotNotFound = errors.New("schedule slot not found")

	// ErrScheduleOverlap возвращается, когда новое окно пересекается с существующим
	ErrScheduleOverlap = errors.New("schedule slot overlaps an existing one")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
