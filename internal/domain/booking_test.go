package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPendingPayment, true},
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equalf(t, tt.want, b.IsActive(), "status %s", tt.status)
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPendingPayment, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equalf(t, tt.want, b.CanBeCancelled(), "status %s", tt.status)
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseBookingStatus("unknown")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("")
	assert.False(t, ok)
}

func TestWorkingWindow_Valid(t *testing.T) {
	assert.True(t, WorkingWindow{Start: 540, End: 600}.Valid())
	assert.False(t, WorkingWindow{Start: 600, End: 540}.Valid())
	assert.False(t, WorkingWindow{Start: 540, End: 540}.Valid())
	assert.False(t, WorkingWindow{Start: -1, End: 540}.Valid())
}

func TestOccupiedRange_Valid(t *testing.T) {
	assert.True(t, OccupiedRange{Start: 540, End: 600}.Valid())
	assert.False(t, OccupiedRange{Start: 600, End: 600}.Valid())
	assert.False(t, OccupiedRange{Start: 600, End: 540}.Valid())
}
