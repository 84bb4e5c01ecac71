package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

type WorkingHoursService interface {
	GetWeek(ctx context.Context, scope tenancy.Scope) (domain.WorkingWeek, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
