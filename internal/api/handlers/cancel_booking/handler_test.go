package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func setup(t *testing.T) (*mux.Router, *memstore.Bookings) {
	t.Helper()

	store := memstore.NewBookings()
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	for i, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted} {
		_, err := store.Create(context.Background(), &domain.Booking{
			TenantID:   1,
			EmployeeID: 10,
			ServiceID:  3,
			CustomerID: 42,
			Interval:   domain.MustInterval(start.Add(time.Duration(i)*2*time.Hour), start.Add(time.Duration(i)*2*time.Hour+time.Hour)),
			Status:     status,
		})
		require.NoError(t, err)
	}

	validator, err := handlers.NewValidator()
	require.NoError(t, err)

	service := bookings.NewService(store, memstore.NewTxManager(), logger.Nop())
	r := mux.NewRouter()
	r.HandleFunc("/tenants/{tenantId}/employees/{employeeId}/bookings/{bookingId}/cancel",
		NewHandler(tenancytest.Authorizer(), service, validator, logger.Nop()).Handle)
	return r, store
}

func patch(r http.Handler, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, url, strings.NewReader(body)))
	return rec
}

func TestHandle_Cancel(t *testing.T) {
	r, store := setup(t)

	rec := patch(r, "/tenants/1/employees/10/bookings/1/cancel", `{"cancellationReason":"клиент заболел"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "cancelled", body.Status)
	require.NotNil(t, body.CancellationReason)
	assert.Equal(t, "клиент заболел", *body.CancellationReason)

	stored, err := store.GetByID(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)

	// Повторная отмена запрещена
	assert.Equal(t, http.StatusConflict, patch(r, "/tenants/1/employees/10/bookings/1/cancel", "").Code)
}

func TestHandle_Errors(t *testing.T) {
	r, _ := setup(t)

	assert.Equal(t, http.StatusConflict, patch(r, "/tenants/1/employees/10/bookings/2/cancel", "").Code, "completed")
	assert.Equal(t, http.StatusNotFound, patch(r, "/tenants/1/employees/10/bookings/99/cancel", "").Code)
	assert.Equal(t, http.StatusNotFound, patch(r, "/tenants/1/employees/11/bookings/1/cancel", "").Code)
	assert.Equal(t, http.StatusBadRequest, patch(r, "/tenants/1/employees/10/bookings/1/cancel", `{"reason":1}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		patch(r, "/tenants/1/employees/10/bookings/1/cancel", `{"cancellationReason":"`+strings.Repeat("x", 501)+`"}`).Code)
}
