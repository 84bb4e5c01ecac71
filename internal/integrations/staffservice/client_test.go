package staffservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/internal/tenants/1/employees/10", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":10,"tenant_id":1,"full_name":"Anna","is_active":true}`))
	})
	mux.HandleFunc("/internal/tenants/1/services/5", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":5,"tenant_id":1,"name":"Haircut","duration_minutes":45,` +
			`"buffer_before_minutes":5,"buffer_after_minutes":10,"employee_ids":[10,11]}`))
	})
	mux.HandleFunc("/internal/tenants/1/services/6", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream down`))
	})
	mux.HandleFunc("/internal/tenants/1/services/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetEmployee(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	employee, err := client.GetEmployee(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), employee.TenantID)
	assert.True(t, employee.IsActive)

	_, err = client.GetEmployee(context.Background(), 1, 99)
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestClient_GetService(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	service, err := client.GetService(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, service.Duration())
	assert.Equal(t, 5*time.Minute, service.BufferBefore())
	assert.Equal(t, 10*time.Minute, service.BufferAfter())
	assert.True(t, service.PerformedBy(11))
	assert.False(t, service.PerformedBy(12))

	_, err = client.GetService(context.Background(), 1, 404)
	require.ErrorIs(t, err, ErrServiceNotFound)

	_, err = client.GetService(context.Background(), 1, 6)
	require.ErrorIs(t, err, ErrInvalidResponse)

	_, err = client.GetService(context.Background(), 1, 7)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Unreachable(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	client := NewClient(url, 200*time.Millisecond, logger.Nop())
	_, err := client.GetEmployee(context.Background(), 1, 10)
	require.ErrorIs(t, err, ErrInternal)
}
