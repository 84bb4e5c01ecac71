package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{"CANCELLED", "Cancelled", " cancelled "} {
		status, err := ParseBookingStatus(s)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, status)
	}

	status, err := ParseBookingStatus("COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)

	_, err = ParseBookingStatus("no_show")
	require.ErrorIs(t, err, ErrInvalidBookingStatus)
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusPending))
	assert.True(t, IsActive(StatusConfirmed))
	assert.True(t, IsActive(StatusCompleted))
	assert.False(t, IsActive(StatusCancelled))
	assert.False(t, IsActive(BookingStatus("CANCELLED")))
}

func TestBooking_ProtectedInterval(t *testing.T) {
	b := &Booking{
		Interval:     iv(10, 0, 11, 0),
		BufferBefore: 10 * time.Minute,
		BufferAfter:  15 * time.Minute,
		Status:       StatusConfirmed,
	}

	assert.Equal(t, iv(9, 50, 11, 15), b.ProtectedInterval())
	assert.True(t, b.CanBeCancelled())
}

func TestActiveProtectedIntervals(t *testing.T) {
	bookings := []*Booking{
		{Interval: iv(9, 0, 10, 0), Status: StatusConfirmed, BufferAfter: 5 * time.Minute},
		{Interval: iv(11, 0, 12, 0), Status: StatusCancelled},
		{Interval: iv(13, 0, 14, 0), Status: StatusPending},
	}

	assert.Equal(t, []Interval{iv(9, 0, 10, 5), iv(13, 0, 14, 0)}, ActiveProtectedIntervals(bookings))
}

func TestBookingPolicy(t *testing.T) {
	p := DefaultBookingPolicy(1)
	assert.True(t, p.IsTenantWide())
	assert.Equal(t, 45*time.Minute, p.Step(45*time.Minute))
	assert.Nil(t, p.LatestBookableTime(at(10, 0)))

	p.SlotStepMinutes = 15
	p.AdvanceBookingDays = 2
	p.MinBookingNoticeMinutes = 60
	assert.Equal(t, 15*time.Minute, p.Step(45*time.Minute))
	assert.Equal(t, time.Hour, p.MinBookingNotice())

	limit := p.LatestBookableTime(at(10, 0))
	require.NotNil(t, limit)
	assert.Equal(t, monday.AddDate(0, 0, 3), *limit)
}
