package absences

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	absenceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/absence"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

// Service хранилище отсутствий сотрудников.
// Каждая запись выполняется в DoSerializable (или присоединяется к транзакции вызывающего),
// поэтому проверка пересечений и запись атомарны.
type Service struct {
	repo      AbsenceRepository
	txManager TransactionManager
	logger    Logger
	newID     func() uuid.UUID
}

// NewService создает новый экземпляр сервиса отсутствий
func NewService(repo AbsenceRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
		newID:     uuid.New,
	}
}

// Add создает отсутствие. Пересечение с любым другим отсутствием сотрудника - ErrOverlapConflict.
// Смежные интервалы ([09:00,10:00) и [10:00,11:00)) не пересекаются.
func (s *Service) Add(ctx context.Context, scope tenancy.Scope, interval domain.Interval, reason *string) (*domain.Absence, error) {
	if err := validate(interval, reason); err != nil {
		return nil, err
	}

	absence := &domain.Absence{
		ID:         s.newID(),
		TenantID:   scope.TenantID(),
		EmployeeID: scope.EmployeeID(),
		Interval:   interval,
		Reason:     reason,
	}

	var created *domain.Absence
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.checkOverlap(ctx, scope, interval, nil); err != nil {
			return err
		}

		var err error
		created, err = s.repo.Create(ctx, absence)
		return err
	})
	if err != nil {
		return nil, s.translate("Add", scope, err)
	}

	s.logger.Info("Add: absence id=%s %s created for %s", created.ID, created.Interval, scope)
	return created, nil
}

// Update меняет интервал и/или причину. Проверка пересечений исключает саму запись.
// Отсутствие другого сотрудника считается ненайденным.
func (s *Service) Update(ctx context.Context, scope tenancy.Scope, id uuid.UUID, newInterval *domain.Interval, reason *string) (*domain.Absence, error) {
	if newInterval != nil {
		if err := validate(*newInterval, reason); err != nil {
			return nil, err
		}
	} else if err := validateReason(reason); err != nil {
		return nil, err
	}

	var updated *domain.Absence
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, scope.TenantID(), scope.EmployeeID(), id)
		if err != nil {
			return err
		}

		if newInterval != nil {
			if err := s.checkOverlap(ctx, scope, *newInterval, &id); err != nil {
				return err
			}
			existing.Interval = *newInterval
		}
		if reason != nil {
			existing.Reason = reason
		}

		updated, err = s.repo.Update(ctx, existing)
		return err
	})
	if err != nil {
		return nil, s.translate("Update", scope, err)
	}

	s.logger.Info("Update: absence id=%s updated for %s", id, scope)
	return updated, nil
}

// Get получает отсутствие сотрудника
func (s *Service) Get(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*domain.Absence, error) {
	absence, err := s.repo.GetByID(ctx, scope.TenantID(), scope.EmployeeID(), id)
	if err != nil {
		return nil, s.translate("Get", scope, err)
	}
	return absence, nil
}

// Remove удаляет отсутствие
func (s *Service) Remove(ctx context.Context, scope tenancy.Scope, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, scope.TenantID(), scope.EmployeeID(), id); err != nil {
		return s.translate("Remove", scope, err)
	}

	s.logger.Info("Remove: absence id=%s removed for %s", id, scope)
	return nil
}

// ListForEmployee получает отсутствия сотрудника. Фильтр выбирает отсутствия,
// пересекающиеся с [From, To] включительно.
func (s *Service) ListForEmployee(ctx context.Context, scope tenancy.Scope, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error) {
	if filter != nil && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	absences, err := s.repo.ListForEmployee(ctx, scope.TenantID(), scope.EmployeeID(), filter)
	if err != nil {
		return nil, s.translate("ListForEmployee", scope, err)
	}
	return absences, nil
}

// checkOverlap загружает отсутствия сотрудника вокруг interval и проверяет пересечение
func (s *Service) checkOverlap(ctx context.Context, scope tenancy.Scope, interval domain.Interval, exclude *uuid.UUID) error {
	candidates, err := s.repo.ListForEmployee(ctx, scope.TenantID(), scope.EmployeeID(), &domain.AbsenceRangeFilter{
		From: interval.Start,
		To:   interval.End,
	})
	if err != nil {
		return err
	}

	for _, other := range candidates {
		if exclude != nil && other.ID == *exclude {
			continue
		}
		if domain.Overlaps(interval, other.Interval) {
			return fmt.Errorf("%w: %s overlaps absence id=%s %s", ErrOverlapConflict, interval, other.ID, other.Interval)
		}
	}
	return nil
}

func (s *Service) translate(op string, scope tenancy.Scope, err error) error {
	switch {
	case errors.Is(err, ErrOverlapConflict), errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: %s: %v", op, scope, err)
		return err
	case errors.Is(err, absenceRepo.ErrOverlap):
		s.logger.Warn("%s: %s: storage overlap: %v", op, scope, err)
		return fmt.Errorf("%w: %v", ErrOverlapConflict, err)
	case errors.Is(err, absenceRepo.ErrAbsenceNotFound):
		s.logger.Warn("%s: absence not found for %s", op, scope)
		return ErrAbsenceNotFound
	default:
		s.logger.Error("%s: repository error for %s: %v", op, scope, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func validate(interval domain.Interval, reason *string) error {
	if err := interval.Validate(); err != nil {
		return err
	}
	return validateReason(reason)
}

func validateReason(reason *string) error {
	if reason != nil && len(*reason) > domain.MaxAbsenceReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxAbsenceReasonLength)
	}
	return nil
}
