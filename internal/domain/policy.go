package domain

import "time"

// BookingPolicy правила бронирования.
// Поддерживает иерархию:
// 1. Конкретный сотрудник (tenant_id, employee_id)
// 2. Весь тенант (tenant_id, NULL)
type BookingPolicy struct {
	ID                      int64
	TenantID                int64
	EmployeeID              *int64 // NULL = политика для всех сотрудников тенанта
	SlotStepMinutes         int    // 0 = шаг равен длительности услуги
	AdvanceBookingDays      int    // 0 = без ограничений
	MinBookingNoticeMinutes int
	MaxHorizonDays          int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultBookingPolicy политика, используемая когда в хранилище ничего не задано
func DefaultBookingPolicy(tenantID int64) *BookingPolicy {
	return &BookingPolicy{
		TenantID:                tenantID,
		SlotStepMinutes:         DefaultSlotStepMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		MaxHorizonDays:          DefaultMaxHorizonDays,
	}
}

// IsTenantWide returns true if this policy applies to every employee of the tenant
func (p *BookingPolicy) IsTenantWide() bool {
	return p.EmployeeID == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (p *BookingPolicy) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// Step шаг перебора слотов для услуги указанной длительности
func (p *BookingPolicy) Step(serviceDuration time.Duration) time.Duration {
	if p.SlotStepMinutes > 0 {
		return time.Duration(p.SlotStepMinutes) * time.Minute
	}
	return serviceDuration
}

// MinBookingNotice минимальное время от "сейчас" до начала бронирования
func (p *BookingPolicy) MinBookingNotice() time.Duration {
	return time.Duration(p.MinBookingNoticeMinutes) * time.Minute
}

// LatestBookableTime граница горизонта бронирования относительно now (nil = без ограничения)
func (p *BookingPolicy) LatestBookableTime(now time.Time) *time.Time {
	if !p.HasAdvanceBookingLimit() {
		return nil
	}
	y, m, d := now.UTC().Date()
	limit := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, p.AdvanceBookingDays+1)
	return &limit
}
