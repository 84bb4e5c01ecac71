// Package tenancytest выдаёт tenancy.Scope для тестов других пакетов
package tenancytest

import (
	"context"
	"testing"

	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

// Directory справочник, в котором любой сотрудник активен и принадлежит запрошенному тенанту
type Directory struct{}

// GetEmployee implements tenancy.Directory
func (Directory) GetEmployee(_ context.Context, tenantID, employeeID int64) (*staffservice.Employee, error) {
	return &staffservice.Employee{ID: employeeID, TenantID: tenantID, IsActive: true}, nil
}

// Authorizer возвращает Authorizer поверх Directory
func Authorizer() *tenancy.Authorizer {
	return tenancy.NewAuthorizer(Directory{}, logger.Nop())
}

// Scope выдаёт подтверждённый Scope
func Scope(t testing.TB, tenantID, employeeID int64) tenancy.Scope {
	t.Helper()

	scope, err := Authorizer().Authorize(context.Background(), tenantID, employeeID)
	if err != nil {
		t.Fatalf("authorize scope: %v", err)
	}
	return scope
}
