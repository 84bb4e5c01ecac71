package update_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

type WorkingHoursService interface {
	SetWeek(ctx context.Context, scope tenancy.Scope, days [7]domain.DayConfig) (domain.WorkingWeek, error)
}

type Validator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
