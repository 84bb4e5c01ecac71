package workinghours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	workingHoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

// Service календарь рабочих часов сотрудников.
// Неделя - неизменяемый value object, сохраняется целиком (без частичных патчей).
type Service struct {
	repo   WorkingHoursRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(repo WorkingHoursRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetWeek возвращает неделю сотрудника. Если неделя не сохранена,
// возвращается domain.DefaultWorkingWeek() и isDefault == true.
func (s *Service) GetWeek(ctx context.Context, scope tenancy.Scope) (week domain.WorkingWeek, isDefault bool, err error) {
	week, err = s.repo.Get(ctx, scope.TenantID(), scope.EmployeeID())
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrWeekNotFound) {
			return domain.DefaultWorkingWeek(), true, nil
		}
		s.logger.Error("GetWeek: repository error for %s: %v", scope, err)
		return domain.WorkingWeek{}, false, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}
	return week, false, nil
}

// GetDayWindows возвращает рабочие окна сотрудника в день недели (пусто, если день выключен)
func (s *Service) GetDayWindows(ctx context.Context, scope tenancy.Scope, weekday time.Weekday) ([]domain.TimeWindow, error) {
	week, _, err := s.GetWeek(ctx, scope)
	if err != nil {
		return nil, err
	}
	return week.DayWindows(weekday), nil
}

// SetWeek валидирует неделю и заменяет её целиком.
// При ошибке валидации (domain.ErrInvalidWorkingHours) ничего не записывается.
func (s *Service) SetWeek(ctx context.Context, scope tenancy.Scope, days [7]domain.DayConfig) (domain.WorkingWeek, error) {
	week, err := domain.NewWorkingWeek(days)
	if err != nil {
		s.logger.Warn("SetWeek: invalid week for %s: %v", scope, err)
		return domain.WorkingWeek{}, err
	}

	if err := s.repo.Upsert(ctx, scope.TenantID(), scope.EmployeeID(), week); err != nil {
		s.logger.Error("SetWeek: repository error for %s: %v", scope, err)
		return domain.WorkingWeek{}, fmt.Errorf("%w: SetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWeek: working hours replaced for %s", scope)
	return week, nil
}
