package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
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

// WorkingHoursService рабочая неделя сотрудника
type WorkingHoursService interface {
	GetWeek(ctx context.Context, scope tenancy.Scope) (domain.WorkingWeek, bool, error)
}

// AbsenceReader отсутствия сотрудника
type AbsenceReader interface {
	ListForEmployee(ctx context.Context, scope tenancy.Scope, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error)
}

// BookingReader возвращает защищённые интервалы активных бронирований
type BookingReader interface {
	ActiveIntervals(ctx context.Context, scope tenancy.Scope, window domain.Interval) ([]domain.Interval, error)
}

// SlotsRecorder метрика количества выданных слотов
type SlotsRecorder interface {
	ObserveSlots(count int)
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
