package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func seed(t *testing.T, store *memstore.Bookings, employeeID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b, err := store.Create(context.Background(), &domain.Booking{
		TenantID:    1,
		EmployeeID:  employeeID,
		ServiceID:   5,
		CustomerID:  77,
		Interval:    domain.MustInterval(start, end),
		BufferAfter: 15 * time.Minute,
		Status:      status,
	})
	require.NoError(t, err)
	return b
}

func newService() (*Service, *memstore.Bookings) {
	store := memstore.NewBookings()
	return NewService(store, memstore.NewTxManager(), logger.Nop()), store
}

func TestService_GetByID_IsScoped(t *testing.T) {
	svc, store := newService()
	b := seed(t, store, 10, at(10, 0), at(11, 0), domain.StatusConfirmed)

	got, err := svc.GetByID(context.Background(), tenancytest.Scope(t, 1, 10), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, 15, got.BufferAfterMinutes)

	_, err = svc.GetByID(context.Background(), tenancytest.Scope(t, 1, 11), b.ID)
	require.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), tenancytest.Scope(t, 2, 10), b.ID)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	svc, store := newService()
	scope := tenancytest.Scope(t, 1, 10)
	b := seed(t, store, 10, at(10, 0), at(11, 0), domain.StatusConfirmed)
	done := seed(t, store, 10, at(12, 0), at(13, 0), domain.StatusCompleted)

	resp, err := svc.Cancel(context.Background(), scope, b.ID, &models.CancelBookingRequest{Reason: ptr.Ptr("sick")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, ptr.Ptr("sick"), resp.CancellationReason)
	require.NotNil(t, resp.CancelledAt)

	_, err = svc.Cancel(context.Background(), scope, b.ID, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), scope, done.ID, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), scope, 999, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrBookingNotFound)

	// Отменённое бронирование освобождает время
	intervals, err := svc.ActiveIntervals(context.Background(), scope, domain.MustInterval(at(9, 0), at(18, 0)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Interval{domain.MustInterval(at(12, 0), at(13, 15))}, intervals)
}

func TestService_ListForEmployee(t *testing.T) {
	svc, store := newService()
	scope := tenancytest.Scope(t, 1, 10)
	seed(t, store, 10, at(10, 0), at(11, 0), domain.StatusConfirmed)
	cancelled := seed(t, store, 10, at(12, 0), at(13, 0), domain.StatusPending)
	seed(t, store, 11, at(10, 0), at(11, 0), domain.StatusConfirmed)
	require.NoError(t, store.Cancel(context.Background(), 1, 10, cancelled.ID, nil))

	active, err := svc.ListForEmployee(context.Background(), scope, &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, active.Bookings, 1)

	all, err := svc.ListForEmployee(context.Background(), scope, &models.ListBookingsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	// Буфер после 10:00-11:00 тянется до 11:15
	window, err := svc.ListForEmployee(context.Background(), scope, &models.ListBookingsRequest{
		From: ptr.Ptr(at(11, 10)),
		To:   ptr.Ptr(at(12, 0)),
	})
	require.NoError(t, err)
	assert.Len(t, window.Bookings, 1)

	_, err = svc.ListForEmployee(context.Background(), scope, &models.ListBookingsRequest{
		From: ptr.Ptr(at(12, 0)),
		To:   ptr.Ptr(at(11, 0)),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
