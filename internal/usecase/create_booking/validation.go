package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateService проверяет параметры услуги, полученные из StaffService
func validateService(service *staffservice.Service) error {
	if service.DurationMinutes <= 0 || service.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: service id=%d has invalid duration %d", ErrInternal, service.ID, service.DurationMinutes)
	}

	if service.BufferBeforeMinutes < 0 || service.BufferBeforeMinutes > domain.MaxBufferMinutes ||
		service.BufferAfterMinutes < 0 || service.BufferAfterMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: service id=%d has invalid buffers", ErrInternal, service.ID)
	}

	return nil
}

// validateBookingTime проверяет начало бронирования относительно now и политики
func validateBookingTime(start, now time.Time, policy *domain.BookingPolicy) error {
	if start.Before(now) {
		return ErrInvalidTime
	}

	if start.Before(now.Add(policy.MinBookingNotice())) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, policy.MinBookingNoticeMinutes)
	}

	if limit := policy.LatestBookableTime(now); limit != nil && !start.Before(*limit) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, policy.AdvanceBookingDays)
	}

	return nil
}
