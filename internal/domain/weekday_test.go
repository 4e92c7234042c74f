package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOfWeek_KnownDates(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-03-08", WeekdaySunday},
		{"2026-03-09", WeekdayMonday},
		{"2026-03-10", WeekdayTuesday},
		{"2026-03-11", WeekdayWednesday},
		{"2026-03-12", WeekdayThursday},
		{"2026-03-13", WeekdayFriday},
		{"2026-03-14", WeekdaySaturday},
		{"2000-01-01", WeekdaySaturday},
		{"2024-02-29", WeekdayThursday}, // високосный год
		{"1999-12-31", WeekdayFriday},
	}

	for _, tt := range tests {
		date, err := time.Parse(DateFormat, tt.date)
		assert.NoError(t, err)
		assert.Equalf(t, tt.want, DayOfWeek(date), "date %s", tt.date)
	}
}

// Результат должен совпадать с time.Weekday на любом диапазоне дат
func TestDayOfWeek_MatchesTimeWeekday(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3000; i++ {
		date := start.AddDate(0, 0, i)
		assert.Equalf(t, int(date.Weekday()), DayOfWeek(date), "date %s", date.Format(DateFormat))
	}
}

// День недели не зависит от часового пояса даты
func TestDayOfWeek_TimezoneIndependent(t *testing.T) {
	riyadh := time.FixedZone("AST", 3*60*60)

	utcDate := time.Date(2026, 3, 11, 23, 30, 0, 0, time.UTC)
	localDate := time.Date(2026, 3, 11, 23, 30, 0, 0, riyadh)

	assert.Equal(t, DayOfWeek(utcDate), DayOfWeek(localDate))
}
