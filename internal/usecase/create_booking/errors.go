package create_booking

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден или выключен
	ErrSpecialistNotFound = errors.New("create_booking: specialist not found")

	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена или выключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotProvided возвращается, когда специалист не оказывает выбранную услугу
	ErrServiceNotProvided = errors.New("create_booking: service is not provided by specialist")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается в рабочее окно специалиста
	ErrOutsideWorkingHours = errors.New("create_booking: requested time is outside working hours")

	// ErrSlotConflict возвращается, когда время уже занято другим бронированием
	ErrSlotConflict = errors.New("create_booking: time slot is already taken")

	// ErrInvalidDate возвращается при дате или времени в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает глубину бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
