package create_absence

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	"github.com/m04kA/SMC-AvailabilityService/pkg/locker"
)

// Authorizer выдаёт подтверждённую область сотрудника
type Authorizer interface {
	Authorize(ctx context.Context, tenantID, employeeID int64) (tenancy.Scope, error)
}

// BookingReader возвращает защищённые интервалы активных бронирований
type BookingReader interface {
	ActiveIntervals(ctx context.Context, scope tenancy.Scope, window domain.Interval) ([]domain.Interval, error)
}

// AbsenceService хранилище отсутствий
type AbsenceService interface {
	Add(ctx context.Context, scope tenancy.Scope, interval domain.Interval, reason *string) (*domain.Absence, error)
}

// ConflictResolver проверяет допустимость отсутствия
type ConflictResolver interface {
	CanPlaceAbsence(scope tenancy.Scope, candidate domain.Interval, activeBookings []domain.Interval) (availability.Decision, error)
}

// Locker блокировка расписания сотрудника
type Locker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
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
