package policy

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetByTenantAndEmployee(ctx context.Context, tenantID int64, employeeID *int64) (*domain.BookingPolicy, error)
	GetWithHierarchy(ctx context.Context, tenantID, employeeID int64) (*domain.BookingPolicy, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]*domain.BookingPolicy, error)
	Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error)
	Delete(ctx context.Context, tenantID int64, employeeID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
