package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID int64     `json:"serviceId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"` // RFC 3339, "2025-10-15T10:00:00Z"
	Notes     *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID, employeeID, customerID int64) *createBooking.Request {
	return &createBooking.Request{
		TenantID:   tenantID,
		EmployeeID: employeeID,
		ServiceID:  r.ServiceID,
		CustomerID: customerID,
		StartTime:  r.StartTime,
		Notes:      r.Notes,
	}
}
