package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	"github.com/m04kA/SMC-AvailabilityService/pkg/locker"
)

// Authorizer выдаёт подтверждённую область сотрудника
type Authorizer interface {
	Authorize(ctx context.Context, tenantID, employeeID int64) (tenancy.Scope, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetService(ctx context.Context, tenantID, serviceID int64) (*staffservice.Service, error)
}

// PolicyService интерфейс сервиса политик бронирования
type PolicyService interface {
	Get(ctx context.Context, scope tenancy.Scope) (*domain.BookingPolicy, error)
}

// WorkingHoursService рабочая неделя сотрудника (по умолчанию, если не настроена)
type WorkingHoursService interface {
	GetWeek(ctx context.Context, scope tenancy.Scope) (domain.WorkingWeek, bool, error)
}

// BookingReader возвращает защищённые интервалы активных бронирований
type BookingReader interface {
	ActiveIntervals(ctx context.Context, scope tenancy.Scope, window domain.Interval) ([]domain.Interval, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ConflictResolver проверяет допустимость бронирования
type ConflictResolver interface {
	CanPlaceBooking(ctx context.Context, scope tenancy.Scope, candidate domain.Interval, activeBookings []domain.Interval) (availability.Decision, error)
}

// Locker блокировка расписания сотрудника
type Locker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
