package list_absences

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

type AbsenceService interface {
	ListForEmployee(ctx context.Context, scope tenancy.Scope, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
