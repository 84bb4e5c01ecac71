package update_policy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_policy"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_policy"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func router(t *testing.T) *mux.Router {
	t.Helper()

	validator, err := handlers.NewValidator()
	require.NoError(t, err)

	service := policy.NewService(memstore.NewPolicies(), logger.Nop())
	authorizer := tenancytest.Authorizer()

	r := mux.NewRouter()
	r.HandleFunc("/tenants/{tenantId}/policy", NewHandler(authorizer, service, validator, logger.Nop()).Handle).Methods(http.MethodPut)
	r.HandleFunc("/tenants/{tenantId}/policy", get_policy.NewHandler(authorizer, service, logger.Nop()).Handle).Methods(http.MethodGet)
	r.HandleFunc("/tenants/{tenantId}/policy", delete_policy.NewHandler(service, logger.Nop()).Handle).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, url, strings.NewReader(body)))
	return rec
}

func effective(t *testing.T, r http.Handler, employeeID string) models.PolicyResponse {
	t.Helper()

	rec := do(r, http.MethodGet, "/tenants/1/policy?employeeId="+employeeID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body models.PolicyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestPolicy_Hierarchy(t *testing.T) {
	r := router(t)

	assert.Equal(t, domain.DefaultMaxHorizonDays, effective(t, r, "10").MaxHorizonDays)

	require.Equal(t, http.StatusOK, do(r, http.MethodPut, "/tenants/1/policy", `{"slotStepMinutes":30,"minBookingNoticeMinutes":60}`).Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPut, "/tenants/1/policy", `{"employeeId":10,"slotStepMinutes":15}`).Code)

	personal := effective(t, r, "10")
	require.NotNil(t, personal.EmployeeID)
	assert.Equal(t, 15, personal.SlotStepMinutes)

	tenantWide := effective(t, r, "11")
	assert.Nil(t, tenantWide.EmployeeID)
	assert.Equal(t, 30, tenantWide.SlotStepMinutes)
	assert.Equal(t, 60, tenantWide.MinBookingNoticeMinutes)

	rec := do(r, http.MethodGet, "/tenants/1/policy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.PolicyListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list.Policies, 2)

	// После удаления персональной политики действует политика тенанта
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/tenants/1/policy?employeeId=10", "").Code)
	assert.Equal(t, 30, effective(t, r, "10").SlotStepMinutes)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/tenants/1/policy?employeeId=10", "").Code)
}

func TestPolicy_InvalidUpdate(t *testing.T) {
	r := router(t)

	for name, body := range map[string]string{
		"negative step":  `{"slotStepMinutes":-5}`,
		"zero horizon":   `{"maxHorizonDays":0}`,
		"huge advance":   `{"advanceBookingDays":1000}`,
		"bad employee":   `{"employeeId":0}`,
		"unknown field":  `{"maxConcurrentBookings":2}`,
		"not json":       `slot=15`,
		"notice too big": `{"minBookingNoticeMinutes":20000}`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/tenants/1/policy", body).Code)
		})
	}

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/tenants/1/policy?employeeId=-1", "").Code)
}
