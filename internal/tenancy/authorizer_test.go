package tenancy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeDirectory map[int64]*staffservice.Employee

func (d fakeDirectory) GetEmployee(_ context.Context, _, employeeID int64) (*staffservice.Employee, error) {
	if employeeID == 500 {
		return nil, errors.New("connection refused")
	}
	e, ok := d[employeeID]
	if !ok {
		return nil, staffservice.ErrEmployeeNotFound
	}
	return e, nil
}

func TestAuthorizer_Authorize(t *testing.T) {
	directory := fakeDirectory{
		10: {ID: 10, TenantID: 1, IsActive: true},
		11: {ID: 11, TenantID: 2, IsActive: true},
		12: {ID: 12, TenantID: 1, IsActive: false},
	}
	authorizer := NewAuthorizer(directory, logger.Nop())
	ctx := context.Background()

	scope, err := authorizer.Authorize(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), scope.TenantID())
	assert.Equal(t, int64(10), scope.EmployeeID())
	assert.False(t, scope.IsZero())

	tests := []struct {
		name       string
		tenantID   int64
		employeeID int64
		wantErr    error
	}{
		{name: "foreign employee", tenantID: 1, employeeID: 11, wantErr: ErrForeignEmployee},
		{name: "inactive employee", tenantID: 1, employeeID: 12, wantErr: ErrEmployeeInactive},
		{name: "unknown employee", tenantID: 1, employeeID: 99, wantErr: ErrEmployeeNotFound},
		{name: "directory down", tenantID: 1, employeeID: 500, wantErr: ErrDirectoryUnavailable},
		{name: "zero ids", tenantID: 0, employeeID: 10, wantErr: ErrInvalidScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := authorizer.Authorize(ctx, tt.tenantID, tt.employeeID)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, scope.IsZero())
		})
	}
}
