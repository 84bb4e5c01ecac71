package absences

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AbsenceRepository интерфейс репозитория отсутствий
type AbsenceRepository interface {
	Create(ctx context.Context, absence *domain.Absence) (*domain.Absence, error)
	GetByID(ctx context.Context, tenantID, employeeID int64, id uuid.UUID) (*domain.Absence, error)
	ListForEmployee(ctx context.Context, tenantID, employeeID int64, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error)
	Update(ctx context.Context, absence *domain.Absence) (*domain.Absence, error)
	Delete(ctx context.Context, tenantID, employeeID int64, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
