package tenancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// Authorizer выдаёт Scope после проверки принадлежности сотрудника тенанту
type Authorizer struct {
	directory Directory
	logger    Logger
}

// NewAuthorizer создает новый экземпляр Authorizer
func NewAuthorizer(directory Directory, logger Logger) *Authorizer {
	return &Authorizer{
		directory: directory,
		logger:    logger,
	}
}

// Authorize проверяет, что сотрудник существует, активен и принадлежит тенанту
func (a *Authorizer) Authorize(ctx context.Context, tenantID, employeeID int64) (Scope, error) {
	if tenantID <= 0 || employeeID <= 0 {
		return Scope{}, fmt.Errorf("%w: tenant_id=%d, employee_id=%d", ErrInvalidScope, tenantID, employeeID)
	}

	employee, err := a.directory.GetEmployee(ctx, tenantID, employeeID)
	if err != nil {
		if errors.Is(err, staffservice.ErrEmployeeNotFound) {
			return Scope{}, fmt.Errorf("%w: employee_id=%d", ErrEmployeeNotFound, employeeID)
		}
		a.logger.Error("Failed to resolve employee: tenant_id=%d, employee_id=%d, error=%v", tenantID, employeeID, err)
		return Scope{}, fmt.Errorf("%w: Authorize - directory lookup: %v", ErrDirectoryUnavailable, err)
	}

	if employee.ID != employeeID {
		return Scope{}, fmt.Errorf("%w: employee_id=%d", ErrEmployeeNotFound, employeeID)
	}

	if employee.TenantID != tenantID {
		a.logger.Warn("Cross-tenant access attempt: tenant_id=%d, employee_id=%d, owner_tenant_id=%d",
			tenantID, employeeID, employee.TenantID)
		return Scope{}, fmt.Errorf("%w: employee_id=%d, tenant_id=%d", ErrForeignEmployee, employeeID, tenantID)
	}

	if !employee.IsActive {
		return Scope{}, fmt.Errorf("%w: employee_id=%d", ErrEmployeeInactive, employeeID)
	}

	return Scope{tenantID: tenantID, employeeID: employeeID}, nil
}
