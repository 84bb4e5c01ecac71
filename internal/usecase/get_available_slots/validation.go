package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
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

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	return nil
}

// resolveHorizon вычисляет горизонт поиска слотов.
// Конец горизонта ограничивается MaxHorizonDays от начала и AdvanceBookingDays от now.
// ok = false, если после ограничений горизонт пуст.
func resolveHorizon(req *Request, now time.Time, policy *domain.BookingPolicy, defaultDays int) (domain.Interval, bool) {
	from := now
	if req.From != nil {
		from = req.From.UTC()
	}

	to := from.AddDate(0, 0, defaultDays)
	if req.To != nil {
		to = req.To.UTC()
	}

	if limit := from.AddDate(0, 0, policy.MaxHorizonDays); to.After(limit) {
		to = limit
	}

	if limit := policy.LatestBookableTime(now); limit != nil && to.After(*limit) {
		to = *limit
	}

	if !from.Before(to) {
		return domain.Interval{Start: from, End: from}, false
	}
	return domain.Interval{Start: from, End: to}, true
}
