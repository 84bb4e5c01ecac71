package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	staffClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/locker"
	"github.com/m04kA/SMC-AvailabilityService/pkg/pgerr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	authorizer   Authorizer
	staffClient  StaffServiceClient
	policies     PolicyService
	workingHours WorkingHoursService
	bookings     BookingReader
	bookingRepo  BookingRepository
	resolver     ConflictResolver
	locker       Locker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	authorizer Authorizer,
	staffClient StaffServiceClient,
	policies PolicyService,
	workingHours WorkingHoursService,
	bookings BookingReader,
	bookingRepo BookingRepository,
	resolver ConflictResolver,
	locker Locker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		authorizer:   authorizer,
		staffClient:  staffClient,
		policies:     policies,
		workingHours: workingHours,
		bookings:     bookings,
		bookingRepo:  bookingRepo,
		resolver:     resolver,
		locker:       locker,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и запись выполняются под блокировкой сотрудника в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: tenant=%d, employee=%d, service=%d, customer=%d, start=%s",
		req.TenantID, req.EmployeeID, req.ServiceID, req.CustomerID, req.StartTime.UTC().Format("2006-01-02T15:04Z07:00"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Подтверждаем принадлежность сотрудника тенанту
	scope, err := uc.authorizer.Authorize(ctx, req.TenantID, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("CreateBooking: authorization failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.staffClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, staffClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.PerformedBy(req.EmployeeID) {
		uc.logger.Warn("CreateBooking: service id=%d is not performed by %s", req.ServiceID, scope)
		return nil, ErrServiceNotPerformed
	}

	if err := validateService(service); err != nil {
		uc.logger.Error("CreateBooking: %v", err)
		return nil, err
	}

	candidate, err := domain.NewInterval(req.StartTime, req.StartTime.Add(service.Duration()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	protected := candidate.Grow(service.BufferBefore(), service.BufferAfter())

	// 5. Получаем политику и проверяем время бронирования
	policy, err := uc.policies.Get(ctx, scope)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	if err := validateBookingTime(candidate.Start, now, policy); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 6. Блокируем расписание сотрудника
	unlock, err := uc.locker.Lock(ctx, locker.EmployeeKey(req.TenantID, req.EmployeeID))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock %s: %v", scope, err)
		return nil, fmt.Errorf("%w: failed to lock employee schedule: %v", ErrInternal, err)
	}
	defer unlock()

	var result *domain.Booking

	// 7. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Защищённый интервал должен целиком лежать в рабочем окне дня
		week, _, err := uc.workingHours.GetWeek(txCtx, scope)
		if err != nil {
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}
		if !withinWorkingHours(week, candidate, protected) {
			return ErrOutsideWorkingHours
		}

		// 7.2. Активные бронирования вокруг защищённого интервала (FOR UPDATE)
		active, err := uc.bookings.ActiveIntervals(txCtx, scope, protected)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.3. Резолвер конфликтов
		decision, err := uc.resolver.CanPlaceBooking(txCtx, scope, protected, active)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if !decision.Admissible {
			return rejection(decision)
		}

		// 7.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			TenantID:     req.TenantID,
			EmployeeID:   req.EmployeeID,
			ServiceID:    req.ServiceID,
			CustomerID:   req.CustomerID,
			Interval:     candidate,
			BufferBefore: service.BufferBefore(),
			BufferAfter:  service.BufferAfter(),
			Status:       domain.StatusConfirmed,
			Notes:        req.Notes,
		})
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrOutsideWorkingHours):
			uc.logger.Warn("CreateBooking: %s is outside working hours of %s", protected, scope)
			return nil, err
		case errors.Is(err, ErrBlockedByTimeOff), errors.Is(err, ErrBlockedByBooking):
			uc.logger.Warn("CreateBooking: %s rejected: %v", candidate, err)
			return nil, err
		case errors.Is(err, bookingRepo.ErrSlotNotAvailable), pgerr.IsRaceLost(err):
			uc.logger.Warn("CreateBooking: %s lost race in storage: %v", candidate, err)
			return nil, fmt.Errorf("%w: %w: %v", ErrBlockedByBooking, raceLost(), err)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d %s", result.ID, result.Interval)

	return models.FromDomainBooking(result), nil
}

// rejection переводит отказ резолвера в ошибку use case с конфликтующим интервалом
func rejection(decision availability.Decision) error {
	sentinel := ErrBlockedByBooking
	if decision.Reason == availability.ReasonBlockedByTimeOff {
		sentinel = ErrBlockedByTimeOff
	}
	return fmt.Errorf("%w: %w", sentinel, decision.Err())
}

// raceLost отказ без конфликтующего интервала: бронирование, выигравшее гонку, ещё не видно
func raceLost() error {
	return &availability.RejectionError{Reason: availability.ReasonBlockedByBooking}
}

// withinWorkingHours проверяет, что защищённый интервал помещается в одно из окон дня начала услуги
func withinWorkingHours(week domain.WorkingWeek, candidate, protected domain.Interval) bool {
	for _, w := range week.DayWindows(candidate.Start.Weekday()) {
		if w.On(candidate.Start).Contains(protected) {
			return true
		}
	}
	return false
}
