package update_policy

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
)

// UpdatePolicyRequest HTTP request model.
// employeeId не передан - политика всего тенанта.
type UpdatePolicyRequest struct {
	EmployeeID              *int64 `json:"employeeId,omitempty" validate:"omitempty,gt=0"`
	SlotStepMinutes         *int   `json:"slotStepMinutes,omitempty" validate:"omitempty,min=0,max=480"`
	AdvanceBookingDays      *int   `json:"advanceBookingDays,omitempty" validate:"omitempty,min=0,max=365"`
	MinBookingNoticeMinutes *int   `json:"minBookingNoticeMinutes,omitempty" validate:"omitempty,min=0,max=10080"`
	MaxHorizonDays          *int   `json:"maxHorizonDays,omitempty" validate:"omitempty,min=1,max=92"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePolicyRequest) ToServiceRequest(tenantID int64) *models.UpsertPolicyRequest {
	return &models.UpsertPolicyRequest{
		TenantID:                tenantID,
		EmployeeID:              r.EmployeeID,
		SlotStepMinutes:         r.SlotStepMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		MaxHorizonDays:          r.MaxHorizonDays,
	}
}
