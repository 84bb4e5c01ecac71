package workinghours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	Get(ctx context.Context, tenantID, employeeID int64) (domain.WorkingWeek, error)
	Upsert(ctx context.Context, tenantID, employeeID int64, week domain.WorkingWeek) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
