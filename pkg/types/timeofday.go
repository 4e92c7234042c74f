package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате строки времени
	// Ожидается "HH:MM" или "HH:MM:SS" с ведущими нулями
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM or HH:MM:SS")

	// ErrTimeOutOfRange возвращается, когда значение выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time of day out of range")
)

// TimeOfDay время суток с точностью до минуты, хранится как количество минут
// с полуночи. Инвариант: 0 <= значение < 1440.
//
// В БД хранится в колонках типа TIME (строка "HH:MM:SS"), в JSON
// сериализуется как "HH:MM".
type TimeOfDay int

// NewTimeOfDay создает TimeOfDay из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// FromClock извлекает время суток из time.Time (секунды отбрасываются)
func FromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay парсит строку "HH:MM" или "HH:MM:SS"
// Секунды принимаются (хранилище всегда отдает их), но отбрасываются.
// Некорректная строка возвращает ошибку, значение никогда не "заворачивается".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 && len(s) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, ok := parseTwoDigits(s[0:2])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, ok := parseTwoDigits(s[3:5])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if len(s) == 8 {
		if s[5] != ':' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		second, ok := parseTwoDigits(s[6:8])
		if !ok || second > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

func parseTwoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// Valid проверяет инвариант 0 <= t < 1440
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Hour возвращает часы (0-23)
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute возвращает минуты внутри часа (0-59)
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes возвращает количество минут с полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String сериализует время в "HH:MM" с ведущими нулями
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// StringSeconds сериализует время в "HH:MM:SS" (для хранилищ, всегда несущих секунды)
func (t TimeOfDay) StringSeconds() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

// Before возвращает true, если t строго раньше other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After возвращает true, если t строго позже other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// AddMinutes возвращает время через m минут
// Выход за пределы суток возвращает ошибку, а не перенос на следующий день
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	result := TimeOfDay(int(t) + m)
	if !result.Valid() {
		return 0, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, int(t)+m)
	}
	return result, nil
}

// Scan реализует sql.Scanner для колонок TIME
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = FromClock(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}

// Value реализует driver.Valuer для колонок TIME
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, int(t))
	}
	return t.StringSeconds(), nil
}

// MarshalJSON сериализует время в JSON строкой "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит время из JSON строки "HH:MM" или "HH:MM:SS"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
