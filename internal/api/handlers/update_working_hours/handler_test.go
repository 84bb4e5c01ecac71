package update_working_hours

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
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_working_hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const path = "/tenants/{tenantId}/employees/{employeeId}/working-hours"

func router(t *testing.T) *mux.Router {
	t.Helper()

	validator, err := handlers.NewValidator()
	require.NoError(t, err)

	service := workinghours.NewService(memstore.NewWorkingHours(), logger.Nop())
	r := mux.NewRouter()
	r.HandleFunc(path, NewHandler(tenancytest.Authorizer(), service, validator, logger.Nop()).Handle).Methods(http.MethodPut)
	r.HandleFunc(path, get_working_hours.NewHandler(tenancytest.Authorizer(), service, logger.Nop()).Handle).Methods(http.MethodGet)
	return r
}

func week(monday string) string {
	return `{"days":[` + monday + `,
		{"weekday":"tuesday","enabled":true,"windows":[{"start":"09:00","end":"13:00"},{"start":"14:00","end":"18:00"}]},
		{"weekday":"wednesday","enabled":false,"windows":[]},
		{"weekday":"thursday","enabled":false,"windows":[]},
		{"weekday":"friday","enabled":false,"windows":[]},
		{"weekday":"saturday","enabled":true,"windows":[{"start":"10:00","end":"24:00"}]},
		{"weekday":"sunday","enabled":false,"windows":[]}]}`
}

func do(r http.Handler, method, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, "/tenants/1/employees/10/working-hours", strings.NewReader(body)))
	return rec
}

func TestWorkingHours_DefaultThenReplace(t *testing.T) {
	r := router(t)

	rec := do(r, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var before models.WeekResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&before))
	assert.True(t, before.IsDefault)
	require.Len(t, before.Days, 7)
	assert.Equal(t, "monday", before.Days[0].Weekday)

	rec = do(r, http.MethodPut, week(`{"weekday":"monday","enabled":true,"windows":[{"start":"08:00","end":"12:00"}]}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var after models.WeekResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&after))
	assert.False(t, after.IsDefault)
	require.Len(t, after.Days[1].Windows, 2)
	assert.Equal(t, "24:00", after.Days[5].Windows[0].End.String())
}

func TestWorkingHours_InvalidWeekNotStored(t *testing.T) {
	r := router(t)

	tests := map[string]string{
		"overlap":      week(`{"weekday":"monday","enabled":true,"windows":[{"start":"09:00","end":"12:00"},{"start":"11:00","end":"13:00"}]}`),
		"disabled day": week(`{"weekday":"monday","enabled":false,"windows":[{"start":"09:00","end":"12:00"}]}`),
		"bad weekday":  week(`{"weekday":"funday","enabled":false,"windows":[]}`),
		"six days":     `{"days":[{"weekday":"monday","enabled":false,"windows":[]}]}`,
		"empty":        ``,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, body).Code)
		})
	}

	rec := do(r, http.MethodGet, "")
	var current models.WeekResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&current))
	assert.True(t, current.IsDefault)
}
