package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// UpsertPolicyRequest запрос на создание или изменение политики
// Поля опциональны - непереданные значения берутся из текущей политики уровня или значений по умолчанию
type UpsertPolicyRequest struct {
	TenantID                int64
	EmployeeID              *int64 // NULL = политика для всех сотрудников тенанта
	SlotStepMinutes         *int
	AdvanceBookingDays      *int
	MinBookingNoticeMinutes *int
	MaxHorizonDays          *int
}

// ApplyToPolicy применяет переданные значения к политике
func (r *UpsertPolicyRequest) ApplyToPolicy(p *domain.BookingPolicy) {
	if r.SlotStepMinutes != nil {
		p.SlotStepMinutes = *r.SlotStepMinutes
	}
	if r.AdvanceBookingDays != nil {
		p.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		p.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
	if r.MaxHorizonDays != nil {
		p.MaxHorizonDays = *r.MaxHorizonDays
	}
}

// Response модели

// PolicyResponse ответ с данными политики
type PolicyResponse struct {
	ID                      int64     `json:"id,omitempty"`
	TenantID                int64     `json:"tenantId"`
	EmployeeID              *int64    `json:"employeeId,omitempty"`
	SlotStepMinutes         int       `json:"slotStepMinutes"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	MaxHorizonDays          int       `json:"maxHorizonDays"`
	CreatedAt               time.Time `json:"createdAt,omitempty"`
	UpdatedAt               time.Time `json:"updatedAt,omitempty"`
}

// PolicyListResponse ответ со списком политик тенанта
type PolicyListResponse struct {
	Policies []PolicyResponse `json:"policies"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.BookingPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	return &PolicyResponse{
		ID:                      p.ID,
		TenantID:                p.TenantID,
		EmployeeID:              p.EmployeeID,
		SlotStepMinutes:         p.SlotStepMinutes,
		AdvanceBookingDays:      p.AdvanceBookingDays,
		MinBookingNoticeMinutes: p.MinBookingNoticeMinutes,
		MaxHorizonDays:          p.MaxHorizonDays,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

// FromDomainPolicyList конвертирует список domain моделей в DTO
func FromDomainPolicyList(policies []*domain.BookingPolicy) *PolicyListResponse {
	resp := &PolicyListResponse{Policies: make([]PolicyResponse, 0, len(policies))}
	for _, p := range policies {
		resp.Policies = append(resp.Policies, *FromDomainPolicy(p))
	}
	return resp
}
