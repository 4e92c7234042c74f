package domain

import "time"

// Дни недели в соглашении таблицы specialist_schedules: 0=воскресенье ... 6=суббота
const (
	WeekdaySunday = iota
	WeekdayMonday
	WeekdayTuesday
	WeekdayWednesday
	WeekdayThursday
	WeekdayFriday
	WeekdaySaturday
)

// DayOfWeek возвращает день недели календарной даты в соглашении
// 0=воскресенье ... 6=суббота.
//
// Вычисление детерминированное (алгоритм Сакамото по году/месяцу/дню),
// не зависит от локали и таймзоны процесса. Расписания хранятся именно
// в этом соглашении, поэтому любое расхождение здесь смещает выдачу
// слотов на день, см. тесты с закрепленными датами.
func DayOfWeek(date time.Time) int {
	y, m, d := date.Date()
	return dayOfWeek(y, int(m), d)
}

// dayOfWeek алгоритм Сакамото, 0=воскресенье
func dayOfWeek(y, m, d int) int {
	offsets := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	if m < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + offsets[m-1] + d) % 7
}
