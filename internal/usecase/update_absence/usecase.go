package update_absence

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

// UseCase use case для изменения отсутствия сотрудника
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

// Execute изменяет отсутствие. Новый интервал проверяется на пересечение с активными
// бронированиями и другими отсутствиями сотрудника (само изменяемое отсутствие не учитывается).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AbsenceResponse, error) {
	uc.logger.Info("UpdateAbsence: tenant=%d, employee=%d, absence=%s", req.TenantID, req.EmployeeID, req.AbsenceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAbsence: validation failed: %v", err)
		return nil, err
	}

	// 2. Подтверждаем принадлежность сотрудника тенанту
	scope, err := uc.authorizer.Authorize(ctx, req.TenantID, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("UpdateAbsence: authorization failed: %v", err)
		return nil, err
	}

	// 3. Блокируем расписание сотрудника
	unlock, err := uc.locker.Lock(ctx, locker.EmployeeKey(req.TenantID, req.EmployeeID))
	if err != nil {
		uc.logger.Error("UpdateAbsence: failed to lock %s: %v", scope, err)
		return nil, fmt.Errorf("%w: failed to lock employee schedule: %v", ErrInternal, err)
	}
	defer unlock()

	var updated *domain.Absence

	// 4. Проверка бронирований и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var newInterval *domain.Interval

		if req.changesInterval() {
			current, err := uc.absences.Get(txCtx, scope, req.AbsenceID)
			if err != nil {
				return err
			}

			interval, err := mergeInterval(current.Interval, req)
			if err != nil {
				return err
			}

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

			newInterval = &interval
		}

		var err error
		updated, err = uc.absences.Update(txCtx, scope, req.AbsenceID, newInterval, req.Reason)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBlockedByBooking), errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("UpdateAbsence: absence id=%s rejected: %v", req.AbsenceID, err)
			return nil, err
		case errors.Is(err, absences.ErrAbsenceNotFound):
			uc.logger.Warn("UpdateAbsence: absence id=%s not found for %s", req.AbsenceID, scope)
			return nil, ErrAbsenceNotFound
		case errors.Is(err, absences.ErrOverlapConflict):
			uc.logger.Warn("UpdateAbsence: absence id=%s rejected: %v", req.AbsenceID, err)
			return nil, fmt.Errorf("%w: %v", ErrOverlapConflict, err)
		case errors.Is(err, absences.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case pgerr.IsSerializationFailure(err):
			uc.logger.Warn("UpdateAbsence: absence id=%s lost race in storage: %v", req.AbsenceID, err)
			return nil, fmt.Errorf("%w: %w: %v", ErrBlockedByBooking, &availability.RejectionError{Reason: availability.ReasonBlockedByBooking}, err)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("UpdateAbsence: %v", err)
			return nil, err
		default:
			uc.logger.Error("UpdateAbsence: failed to update absence: %v", err)
			return nil, fmt.Errorf("%w: failed to update absence: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateAbsence: updated absence id=%s %s", updated.ID, updated.Interval)
	return models.FromDomainAbsence(updated), nil
}
