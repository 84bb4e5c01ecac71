package update_absence

import (
	"fmt"

	"github.com/google/uuid"

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

	if req.AbsenceID == uuid.Nil {
		return fmt.Errorf("%w: absenceID is required", ErrInvalidInput)
	}

	if !req.changesInterval() && req.Reason == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxAbsenceReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxAbsenceReasonLength)
	}

	return nil
}

// mergeInterval применяет новые границы к текущему интервалу отсутствия
func mergeInterval(current domain.Interval, req *Request) (domain.Interval, error) {
	start, end := current.Start, current.End
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}

	interval, err := domain.NewInterval(start, end)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return interval, nil
}
