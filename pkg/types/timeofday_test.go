package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"10:00:00", 600, false},
		{"10:15:30", 615, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
		{"10-00", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			assert.Errorf(t, err, "input %q", tt.input)
			continue
		}
		require.NoErrorf(t, err, "input %q", tt.input)
		assert.Equal(t, tt.minutes, got.Minutes(), "input %q", tt.input)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	v, err := NewTimeOfDay(9, 5)
	require.NoError(t, err)
	assert.Equal(t, "09:05", v.String())
	assert.Equal(t, "09:05:00", v.StringSeconds())
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	v, err := NewTimeOfDay(23, 0)
	require.NoError(t, err)

	later, err := v.AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", later.String())

	// Выход за границу суток
	_, err = v.AddMinutes(61)
	assert.Error(t, err)
}

func TestTimeOfDay_BeforeAfter(t *testing.T) {
	early, err := ParseTimeOfDay("09:00")
	require.NoError(t, err)
	late, err := ParseTimeOfDay("10:00")
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.After(early))
	assert.False(t, early.Before(early))
}

func TestTimeOfDay_Scan(t *testing.T) {
	var v TimeOfDay

	require.NoError(t, v.Scan("14:30:00"))
	assert.Equal(t, "14:30", v.String())

	require.NoError(t, v.Scan([]byte("08:15:00")))
	assert.Equal(t, "08:15", v.String())

	require.NoError(t, v.Scan(time.Date(1, 1, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, "16:45", v.String())

	assert.Error(t, v.Scan(42))
}

func TestTimeOfDay_Value(t *testing.T) {
	v, err := ParseTimeOfDay("11:20")
	require.NoError(t, err)

	dbValue, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, "11:20:00", dbValue)
}

func TestTimeOfDay_JSON(t *testing.T) {
	v, err := ParseTimeOfDay("07:45")
	require.NoError(t, err)

	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"07:45"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, parsed.UnmarshalJSON([]byte(`"18:30"`)))
	assert.Equal(t, "18:30", parsed.String())

	assert.Error(t, parsed.UnmarshalJSON([]byte(`"25:00"`)))
}

func TestFromClock(t *testing.T) {
	now := time.Date(2026, 5, 1, 13, 37, 59, 0, time.UTC)
	assert.Equal(t, "13:37", FromClock(now).String())
}
