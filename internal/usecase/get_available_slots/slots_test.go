package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamasat/salon-booking-service/internal/domain"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

func tod(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func window(t *testing.T, start, end string) domain.WorkingWindow {
	t.Helper()
	return domain.WorkingWindow{Start: tod(t, start), End: tod(t, end)}
}

func occupied(t *testing.T, start, end string) domain.OccupiedRange {
	t.Helper()
	return domain.OccupiedRange{Start: tod(t, start), End: tod(t, end)}
}

func slotStrings(slots []types.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestComputeSlots_StrideEqualsDuration(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "09:00", "10:00")}

	slots, err := computeSlots(windows, nil, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slotStrings(slots))
}

func TestComputeSlots_LastSlotMustFitEntirely(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "09:00", "10:00")}

	// 09:45 + 45 минут выходит за границу окна
	slots, err := computeSlots(windows, nil, 45)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slotStrings(slots))
}

func TestComputeSlots_OccupiedBlocksSlot(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "09:00", "11:00")}
	occ := []domain.OccupiedRange{occupied(t, "10:00", "11:00")}

	slots, err := computeSlots(windows, occ, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slotStrings(slots))
}

func TestComputeSlots_TouchingEndpointsDoNotConflict(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "09:00", "12:00")}
	occ := []domain.OccupiedRange{occupied(t, "10:00", "11:00")}

	// Слот 11:00-12:00 стыкуется с концом занятого интервала и остается свободным
	slots, err := computeSlots(windows, occ, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, slotStrings(slots))
}

func TestComputeSlots_SplitShift(t *testing.T) {
	windows := []domain.WorkingWindow{
		window(t, "09:00", "12:00"),
		window(t, "16:00", "18:00"),
	}

	slots, err := computeSlots(windows, nil, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "16:00", "17:00"}, slotStrings(slots))
}

func TestComputeSlots_NoWindows(t *testing.T) {
	slots, err := computeSlots(nil, nil, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestComputeSlots_InvalidDuration(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "09:00", "10:00")}

	_, err := computeSlots(windows, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = computeSlots(windows, nil, -15)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestComputeSlots_SkipsInvalidWindowsAndRanges(t *testing.T) {
	windows := []domain.WorkingWindow{
		{Start: tod(t, "10:00"), End: tod(t, "09:00")}, // перевернутое окно
		window(t, "09:00", "10:00"),
	}
	occ := []domain.OccupiedRange{
		{Start: tod(t, "09:30"), End: tod(t, "09:30")}, // пустой интервал
	}

	slots, err := computeSlots(windows, occ, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slotStrings(slots))
}

func TestComputeSlots_SlotsNeverOverlapOccupied(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "08:00", "20:00")}
	occ := []domain.OccupiedRange{
		occupied(t, "09:15", "10:45"),
		occupied(t, "13:00", "13:30"),
		occupied(t, "17:50", "19:00"),
	}

	slots, err := computeSlots(windows, occ, 40)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		start := s.Minutes()
		end := start + 40

		// Слот внутри окна
		assert.GreaterOrEqual(t, start, tod(t, "08:00").Minutes())
		assert.LessOrEqual(t, end, tod(t, "20:00").Minutes())

		// Слот не пересекает занятые интервалы
		for _, o := range occ {
			overlaps := o.Start.Minutes() < end && o.End.Minutes() > start
			assert.Falsef(t, overlaps, "slot %s overlaps occupied %s-%s", s, o.Start, o.End)
		}
	}
}

func TestComputeSlots_Deterministic(t *testing.T) {
	windows := []domain.WorkingWindow{window(t, "09:00", "12:00")}
	occ := []domain.OccupiedRange{occupied(t, "10:00", "10:30")}

	first, err := computeSlots(windows, occ, 30)
	require.NoError(t, err)

	second, err := computeSlots(windows, occ, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFilterSameDaySlots(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeOfDay{tod(t, "09:00"), tod(t, "12:00"), tod(t, "15:00")}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	filtered := filterSameDaySlots(slots, date, now)
	assert.Equal(t, []string{"15:00"}, slotStrings(filtered))

	// Будущая дата не фильтруется
	tomorrow := date.AddDate(0, 0, 1)
	assert.Equal(t, slots, filterSameDaySlots(slots, tomorrow, now))
}

func TestOccupiedFromBookings_SkipsInactive(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: tod(t, "09:00"), EndTime: tod(t, "10:00"), Status: domain.StatusConfirmed},
		{StartTime: tod(t, "10:00"), EndTime: tod(t, "11:00"), Status: domain.StatusCancelled},
		{StartTime: tod(t, "11:00"), EndTime: tod(t, "12:00"), Status: domain.StatusNoShow},
		{StartTime: tod(t, "12:00"), EndTime: tod(t, "13:00"), Status: domain.StatusPendingPayment},
	}

	occ := occupiedFromBookings(bookings)
	require.Len(t, occ, 2)
	assert.Equal(t, "09:00", occ[0].Start.String())
	assert.Equal(t, "12:00", occ[1].Start.String())
}
