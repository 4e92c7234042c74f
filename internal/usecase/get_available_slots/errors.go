package get_available_slots

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден
	ErrSpecialistNotFound = errors.New("get_available_slots: specialist not found")

	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена или выключена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("get_available_slots: duration must be positive")

	// ErrInvalidDate возвращается при некорректной дате (в том числе в прошлом)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает глубину бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (в том числе при недоступности хранилища, частичные данные никогда
	// не трактуются как «нет доступности»)
	ErrInternal = errors.New("get_available_slots: internal error")
)
