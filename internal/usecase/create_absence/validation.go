package create_absence

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует запрос и возвращает интервал отсутствия
func validateRequest(req *Request) (domain.Interval, error) {
	if req.TenantID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxAbsenceReasonLength {
		return domain.Interval{}, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxAbsenceReasonLength)
	}

	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return interval, nil
}
