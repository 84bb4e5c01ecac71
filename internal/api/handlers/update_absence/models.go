package update_absence

import (
	"time"

	"github.com/google/uuid"

	updateAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_absence"
)

// UpdateAbsenceRequest HTTP request model. Непереданные поля не меняются.
type UpdateAbsenceRequest struct {
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Reason    *string    `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAbsenceRequest) ToUseCaseRequest(tenantID, employeeID int64, absenceID uuid.UUID) *updateAbsence.Request {
	return &updateAbsence.Request{
		TenantID:   tenantID,
		EmployeeID: employeeID,
		AbsenceID:  absenceID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Reason:     r.Reason,
	}
}
