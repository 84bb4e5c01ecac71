package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	policyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Service сервис политик бронирования
type Service struct {
	repo   PolicyRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(repo PolicyRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает действующую политику сотрудника
// Приоритет: персональная политика сотрудника -> политика тенанта -> значения по умолчанию
func (s *Service) Get(ctx context.Context, scope tenancy.Scope) (*domain.BookingPolicy, error) {
	p, err := s.repo.GetWithHierarchy(ctx, scope.TenantID(), scope.EmployeeID())
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return domain.DefaultBookingPolicy(scope.TenantID()), nil
		}
		s.logger.Error("Get: repository error for %s: %v", scope, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: using %s policy id=%d for %s", level(p), p.ID, scope)
	return p, nil
}

// List возвращает все политики тенанта
func (s *Service) List(ctx context.Context, tenantID int64) (*models.PolicyListResponse, error) {
	policies, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPolicyList(policies), nil
}

// Upsert создает или изменяет политику уровня (tenant, employee)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Upsert: tenant=%d, employee=%d", req.TenantID, ptr.Deref(req.EmployeeID, 0))

	// 1. Берём текущую политику уровня как основу (или значения по умолчанию)
	current, err := s.repo.GetByTenantAndEmployee(ctx, req.TenantID, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Error("Upsert: repository error: %v", err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		current = domain.DefaultBookingPolicy(req.TenantID)
		current.EmployeeID = req.EmployeeID
	}

	// 2. Применяем изменения и валидируем результат
	req.ApplyToPolicy(current)
	if err := validatePolicy(current); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	saved, err := s.repo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: saved %s policy id=%d", level(saved), saved.ID)
	return models.FromDomainPolicy(saved), nil
}

// Delete удаляет политику уровня, после чего действует политика уровнем выше
func (s *Service) Delete(ctx context.Context, tenantID int64, employeeID *int64) error {
	if err := s.repo.Delete(ctx, tenantID, employeeID); err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return ErrPolicyNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

// validatePolicy валидирует параметры политики
func validatePolicy(p *domain.BookingPolicy) error {
	if p.SlotStepMinutes < domain.MinSlotStepMinutes || p.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if p.AdvanceBookingDays < domain.MinAdvanceBookingDays || p.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if p.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || p.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	if p.MaxHorizonDays < domain.MinHorizonDays || p.MaxHorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: maxHorizonDays must be between %d and %d",
			ErrInvalidInput, domain.MinHorizonDays, domain.MaxHorizonDays)
	}

	return nil
}

// level возвращает строковое представление уровня политики для логирования
func level(p *domain.BookingPolicy) string {
	if p.IsTenantWide() {
		return "tenant"
	}
	return "employee"
}
