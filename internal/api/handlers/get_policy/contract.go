package get_policy

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

type PolicyService interface {
	Get(ctx context.Context, scope tenancy.Scope) (*domain.BookingPolicy, error)
	List(ctx context.Context, tenantID int64) (*models.PolicyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
