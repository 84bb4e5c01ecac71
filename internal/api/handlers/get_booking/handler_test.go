package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := memstore.NewBookings()
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	booking, err := store.Create(context.Background(), &domain.Booking{
		TenantID:   1,
		EmployeeID: 10,
		ServiceID:  3,
		CustomerID: 42,
		Interval:   domain.MustInterval(start, start.Add(time.Hour)),
		Status:     domain.StatusConfirmed,
	})
	require.NoError(t, err)

	service := bookings.NewService(store, memstore.NewTxManager(), logger.Nop())
	r := mux.NewRouter()
	r.HandleFunc("/tenants/{tenantId}/employees/{employeeId}/bookings/{bookingId}",
		NewHandler(tenancytest.Authorizer(), service, logger.Nop()).Handle)

	get := func(url string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		return rec
	}

	rec := get("/tenants/1/employees/10/bookings/1")
	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, booking.ID, body.ID)
	assert.Equal(t, int64(42), body.CustomerID)

	// Чужой сотрудник и чужой тенант не видят бронирование
	assert.Equal(t, http.StatusNotFound, get("/tenants/1/employees/11/bookings/1").Code)
	assert.Equal(t, http.StatusNotFound, get("/tenants/2/employees/10/bookings/1").Code)
	assert.Equal(t, http.StatusBadRequest, get("/tenants/1/employees/10/bookings/zero").Code)
}
