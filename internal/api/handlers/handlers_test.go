package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "занято"}, body)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "x", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
	require.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	require.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)

	for _, body := range []string{"", "  \n"} {
		req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		require.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := DecodeJSON(req, &dst)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}

func TestParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2025-10-13T09:00:00Z&includeInactive=true&employeeId=7&bad=x", nil)
	req = mux.SetURLVars(req, map[string]string{"tenantId": "5", "employeeId": "0", "absenceId": "not-a-uuid"})

	id, err := PathInt64(req, "tenantId")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	_, err = PathInt64(req, "employeeId")
	require.ErrorIs(t, err, ErrInvalidParam)

	_, err = PathUUID(req, "absenceId")
	require.ErrorIs(t, err, ErrInvalidParam)

	from, err := QueryTime(req, "from")
	require.NoError(t, err)
	assert.Equal(t, 9, from.Hour())

	to, err := QueryTime(req, "to")
	require.NoError(t, err)
	assert.Nil(t, to)

	_, err = QueryTime(req, "bad")
	require.ErrorIs(t, err, ErrInvalidParam)

	inactive, err := QueryBool(req, "includeInactive")
	require.NoError(t, err)
	assert.True(t, inactive)

	employeeID, err := QueryInt64(req, "employeeId")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *employeeID)
}

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	type payload struct {
		ServiceID int64  `json:"serviceId" validate:"required,gt=0"`
		Notes     string `json:"notes" validate:"max=5"`
	}

	require.NoError(t, v.Struct(payload{ServiceID: 1}))

	err = v.Struct(payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serviceId is a required field")

	err = v.Struct(payload{ServiceID: 1, Notes: "too long"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes")
}

func TestRespondScopeError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: tenancy.ErrInvalidScope, status: http.StatusBadRequest},
		{err: tenancy.ErrEmployeeNotFound, status: http.StatusNotFound},
		{err: fmt.Errorf("wrapped: %w", tenancy.ErrForeignEmployee), status: http.StatusForbidden},
		{err: tenancy.ErrEmployeeInactive, status: http.StatusUnprocessableEntity},
		{err: tenancy.ErrDirectoryUnavailable, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		require.True(t, RespondScopeError(rec, tt.err))
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}

	assert.False(t, RespondScopeError(httptest.NewRecorder(), fmt.Errorf("other")))
}

func TestRespondRejection(t *testing.T) {
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	decision := availability.Reject(availability.ReasonBlockedByTimeOff, domain.MustInterval(start, start.Add(time.Hour)))

	rec := httptest.NewRecorder()
	RespondRejection(rec, "занято", fmt.Errorf("create: %w", decision.Err()))

	require.Equal(t, http.StatusConflict, rec.Code)
	var body ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "BLOCKED_BY_TIMEOFF", body.Reason)
	assert.Equal(t, "2025-10-13T10:00:00Z", body.ConflictStart)
	assert.Equal(t, "2025-10-13T11:00:00Z", body.ConflictEnd)

	rec = httptest.NewRecorder()
	RespondRejection(rec, "занято", fmt.Errorf("lost race"))
	var plain ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&plain))
	assert.Equal(t, ConflictResponse{Code: http.StatusConflict, Message: "занято"}, plain)
}

type foreignDirectory struct{}

func (foreignDirectory) GetEmployee(_ context.Context, _, employeeID int64) (*staffservice.Employee, error) {
	return &staffservice.Employee{ID: employeeID, TenantID: 99, IsActive: true}, nil
}

func TestResolveScope(t *testing.T) {
	resolve := func(authorizer Authorizer, url string) (tenancy.Scope, bool, *httptest.ResponseRecorder) {
		var (
			scope tenancy.Scope
			ok    bool
		)
		r := mux.NewRouter()
		r.HandleFunc("/tenants/{tenantId}/employees/{employeeId}", func(w http.ResponseWriter, r *http.Request) {
			scope, ok = ResolveScope(w, r, authorizer, logger.Nop(), "GET /test")
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		return scope, ok, rec
	}

	scope, ok, _ := resolve(tenancytest.Authorizer(), "/tenants/1/employees/10")
	require.True(t, ok)
	assert.Equal(t, int64(1), scope.TenantID())
	assert.Equal(t, int64(10), scope.EmployeeID())

	_, ok, rec := resolve(tenancytest.Authorizer(), "/tenants/abc/employees/10")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, ok, rec = resolve(tenancy.NewAuthorizer(foreignDirectory{}, logger.Nop()), "/tenants/1/employees/10")
	assert.False(t, ok)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
