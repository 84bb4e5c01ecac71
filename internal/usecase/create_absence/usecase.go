package create_absence

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/locker"
	"github.com/m04kA/SMC-AvailabilityService/pkg/pgerr"
)

// UseCase use case для добавления отсутствия сотрудника
type UseCase struct {
	authorizer Authorizer
	bookings   BookingReader
	absences   AbsenceService
	resolver   ConflictResolver
	locker     Locker
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	authorizer Authorizer,
	bookings BookingReader,
	absences AbsenceService,
	resolver ConflictResolver,
	locker Locker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		authorizer: authorizer,
		bookings:   bookings,
		absences:   absences,
		resolver:   resolver,
		locker:     locker,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute добавляет отсутствие, если оно не пересекается с активными бронированиями
// и другими отсутствиями сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AbsenceResponse, error) {
	uc.logger.Info("CreateAbsence: tenant=%d, employee=%d", req.TenantID, req.EmployeeID)

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAbsence: validation failed: %v", err)
		return nil, err
	}

	// 2. Подтверждаем принадлежность сотрудника тенанту
	scope, err := uc.authorizer.Authorize(ctx, req.TenantID, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("CreateAbsence: authorization failed: %v", err)
		return nil, err
	}

	// 3. Блокируем расписание сотрудника
	unlock, err := uc.locker.Lock(ctx, locker.EmployeeKey(req.TenantID, req.EmployeeID))
	if err != nil {
		uc.logger.Error("CreateAbsence: failed to lock %s: %v", scope, err)
		return nil, fmt.Errorf("%w: failed to lock employee schedule: %v", ErrInternal, err)
	}
	defer unlock()

	var created *domain.Absence

	// 4. Проверка бронирований и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.bookings.ActiveIntervals(txCtx, scope, interval)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		decision, err := uc.resolver.CanPlaceAbsence(scope, interval, active)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if !decision.Admissible {
			return fmt.Errorf("%w: %w", ErrBlockedByBooking, decision.Err())
		}

		created, err = uc.absences.Add(txCtx, scope, interval, req.Reason)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBlockedByBooking):
			uc.logger.Warn("CreateAbsence: %s rejected: %v", interval, err)
			return nil, err
		case errors.Is(err, absences.ErrOverlapConflict):
			uc.logger.Warn("CreateAbsence: %s rejected: %v", interval, err)
			return nil, fmt.Errorf("%w: %v", ErrOverlapConflict, err)
		case errors.Is(err, absences.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case pgerr.IsSerializationFailure(err):
			// Конкурентное бронирование зафиксировалось раньше
			uc.logger.Warn("CreateAbsence: %s lost race in storage: %v", interval, err)
			return nil, fmt.Errorf("%w: %w: %v", ErrBlockedByBooking, &availability.RejectionError{Reason: availability.ReasonBlockedByBooking}, err)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateAbsence: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateAbsence: failed to add absence: %v", err)
			return nil, fmt.Errorf("%w: failed to add absence: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAbsence: created absence id=%s %s", created.ID, created.Interval)
	return models.FromDomainAbsence(created), nil
}
