package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	TenantID        int64          `json:"tenantId"`
	EmployeeID      int64          `json:"employeeId"`
	ServiceID       int64          `json:"serviceId"`
	From            string         `json:"from"`
	To              string         `json:"to"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: s.StartTime.Format(time.RFC3339),
			EndTime:   s.EndTime.Format(time.RFC3339),
		}
	}

	return &SlotsResponse{
		TenantID:        resp.TenantID,
		EmployeeID:      resp.EmployeeID,
		ServiceID:       resp.ServiceID,
		From:            resp.From.Format(time.RFC3339),
		To:              resp.To.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
