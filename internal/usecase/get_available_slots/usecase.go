package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	staffClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	authorizer         Authorizer
	staffClient        StaffServiceClient
	policies           PolicyService
	workingHours       WorkingHoursService
	absences           AbsenceReader
	bookings           BookingReader
	recorder           SlotsRecorder
	defaultHorizonDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case. recorder может быть nil.
func NewUseCase(
	authorizer Authorizer,
	staffClient StaffServiceClient,
	policies PolicyService,
	workingHours WorkingHoursService,
	absences AbsenceReader,
	bookings BookingReader,
	recorder SlotsRecorder,
	defaultHorizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		authorizer:         authorizer,
		staffClient:        staffClient,
		policies:           policies,
		workingHours:       workingHours,
		absences:           absences,
		bookings:           bookings,
		recorder:           recorder,
		defaultHorizonDays: defaultHorizonDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, employee=%d, service=%d",
		req.TenantID, req.EmployeeID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Подтверждаем принадлежность сотрудника тенанту
	scope, err := uc.authorizer.Authorize(ctx, req.TenantID, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: authorization failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.staffClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, staffClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.PerformedBy(req.EmployeeID) {
		uc.logger.Warn("GetAvailableSlots: service id=%d is not performed by %s", req.ServiceID, scope)
		return nil, ErrServiceNotPerformed
	}

	// 5. Получаем политику и вычисляем горизонт
	policy, err := uc.policies.Get(ctx, scope)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	resp := &Response{
		TenantID:        req.TenantID,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	horizon, ok := resolveHorizon(req, now, policy, uc.defaultHorizonDays)
	resp.From, resp.To = horizon.Start, horizon.End
	if !ok {
		uc.logger.Info("GetAvailableSlots: empty horizon for %s", scope)
		return resp, nil
	}

	// 6. Рабочая неделя, отсутствия и бронирования в горизонте
	slots, err := uc.collect(ctx, scope, service, policy, horizon, now)
	if err != nil {
		return nil, err
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{StartTime: s.Start, EndTime: s.End})
	}

	if uc.recorder != nil {
		uc.recorder.ObserveSlots(len(resp.Slots))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s, horizon %s",
		len(resp.Slots), scope, horizon)

	return resp, nil
}

func (uc *UseCase) collect(
	ctx context.Context,
	scope tenancy.Scope,
	service *staffClient.Service,
	policy *domain.BookingPolicy,
	horizon domain.Interval,
	now time.Time,
) ([]domain.Interval, error) {
	week, _, err := uc.workingHours.GetWeek(ctx, scope)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	absences, err := uc.absences.ListForEmployee(ctx, scope, &domain.AbsenceRangeFilter{From: horizon.Start, To: horizon.End})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get absences: %v", err)
		return nil, fmt.Errorf("%w: failed to get absences: %v", ErrInternal, err)
	}

	bookings, err := uc.bookings.ActiveIntervals(ctx, scope, horizon)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	seq, err := availability.GenerateSlots(week, domain.AbsenceIntervals(absences), bookings, availability.SlotRequest{
		ServiceDuration: service.Duration(),
		BufferBefore:    service.BufferBefore(),
		BufferAfter:     service.BufferAfter(),
		Step:            policy.Step(service.Duration()),
		Horizon:         horizon,
		Now:             now.Add(policy.MinBookingNotice()),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid slot request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return availability.CollectSlots(seq), nil
}
