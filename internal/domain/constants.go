package domain

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	TimeFormatSeconds = "15:04:05"   // HH:MM:SS (хранилище всегда несет секунды)
	DateFormat        = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxCustomerNameLength       = 120
	MaxCustomerPhoneLength      = 20
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	// MaxAdvanceBookingDays ограничение на глубину бронирования вперед
	MaxAdvanceBookingDays = 90
)

// InactiveStatuses статусы бронирований, которые не занимают время специалиста
// Используются при фильтрации занятых интервалов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
