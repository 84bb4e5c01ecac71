package create_absence

import (
	"time"

	createAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_absence"
)

// CreateAbsenceRequest HTTP request model
type CreateAbsenceRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	Reason    *string   `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAbsenceRequest) ToUseCaseRequest(tenantID, employeeID int64) *createAbsence.Request {
	return &createAbsence.Request{
		TenantID:   tenantID,
		EmployeeID: employeeID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Reason:     r.Reason,
	}
}
