package tenancy

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// Directory справочник сотрудников (StaffService)
type Directory interface {
	GetEmployee(ctx context.Context, tenantID, employeeID int64) (*staffservice.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
