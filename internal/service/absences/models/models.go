package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AbsenceResponse ответ с данными отсутствия
type AbsenceResponse struct {
	ID         string    `json:"id"`
	TenantID   int64     `json:"tenantId"`
	EmployeeID int64     `json:"employeeId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AbsenceListResponse ответ со списком отсутствий
type AbsenceListResponse struct {
	Absences []AbsenceResponse `json:"absences"`
}

// FromDomainAbsence конвертирует domain модель в DTO
func FromDomainAbsence(a *domain.Absence) *AbsenceResponse {
	if a == nil {
		return nil
	}
	return &AbsenceResponse{
		ID:         a.ID.String(),
		TenantID:   a.TenantID,
		EmployeeID: a.EmployeeID,
		StartTime:  a.Interval.Start,
		EndTime:    a.Interval.End,
		Reason:     a.Reason,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAbsenceList конвертирует список domain моделей в DTO
func FromDomainAbsenceList(absences []*domain.Absence) *AbsenceListResponse {
	resp := &AbsenceListResponse{Absences: make([]AbsenceResponse, 0, len(absences))}
	for _, a := range absences {
		resp.Absences = append(resp.Absences, *FromDomainAbsence(a))
	}
	return resp
}
