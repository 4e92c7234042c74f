package schedule

import "errors"

var (
	// ErrScheduleSlotNotFound возвращается, когда окно расписания не найдено
	ErrScheduleSlotNotFound = errors.New("schedule.repository: schedule slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
