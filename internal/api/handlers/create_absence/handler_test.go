package create_absence

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

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	createAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_absence"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeUseCase struct {
	req *createAbsence.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAbsence.Request) (*models.AbsenceResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AbsenceResponse{
		ID:         "5f1c7a52-3c44-4d1c-9b8f-0d3c2a1e9b10",
		TenantID:   req.TenantID,
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}, nil
}

func serve(t *testing.T, uc CreateAbsenceUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	validator, err := handlers.NewValidator()
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/tenants/{tenantId}/employees/{employeeId}/absences", NewHandler(uc, validator, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tenants/1/employees/10/absences", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, `{"startTime":"2025-10-13T09:00:00Z","endTime":"2025-10-13T18:00:00Z","reason":"отпуск"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.req)
	assert.Equal(t, int64(10), uc.req.EmployeeID)
	assert.Equal(t, 9*time.Hour, uc.req.EndTime.Sub(uc.req.StartTime))

	var body models.AbsenceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Reason)
	assert.Equal(t, "отпуск", *body.Reason)
}

func TestHandle_RequestErrors(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        ``,
		"end first":    `{"startTime":"2025-10-13T18:00:00Z","endTime":"2025-10-13T09:00:00Z"}`,
		"equal bounds": `{"startTime":"2025-10-13T09:00:00Z","endTime":"2025-10-13T09:00:00Z"}`,
		"missing end":  `{"startTime":"2025-10-13T09:00:00Z"}`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			assert.Equal(t, http.StatusBadRequest, serve(t, uc, body).Code)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	blocked := fmt.Errorf("%w: %w", createAbsence.ErrBlockedByBooking,
		availability.Reject(availability.ReasonBlockedByBooking, domain.MustInterval(start, start.Add(time.Hour))).Err())

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "booking", err: blocked, status: http.StatusConflict},
		{name: "overlap", err: createAbsence.ErrOverlapConflict, status: http.StatusConflict},
		{name: "invalid", err: createAbsence.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "inactive", err: tenancy.ErrEmployeeInactive, status: http.StatusUnprocessableEntity},
		{name: "internal", err: createAbsence.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, `{"startTime":"2025-10-13T09:00:00Z","endTime":"2025-10-13T18:00:00Z"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
