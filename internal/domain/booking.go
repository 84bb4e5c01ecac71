package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus статус бронирования (закрытый набор значений)
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus разбирает статус без учёта регистра ("CANCELLED", "Cancelled", "cancelled")
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingStatus, s)
	}
}

// IsActive возвращает true, если бронирование с таким статусом занимает время сотрудника.
// Единственный предикат, которым пользуются все вызывающие резолвер конфликтов.
func IsActive(status BookingStatus) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive returns true if the booking still occupies the employee's time
func (s BookingStatus) IsActive() bool {
	return IsActive(s)
}

// Booking бронирование сотрудника.
// Interval - время самой услуги; буферы хранятся отдельно и учитываются через ProtectedInterval.
type Booking struct {
	ID           int64
	TenantID     int64
	EmployeeID   int64
	ServiceID    int64
	CustomerID   int64
	Interval     Interval
	BufferBefore time.Duration
	BufferAfter  time.Duration
	Status       BookingStatus
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return IsActive(b.Status)
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ProtectedInterval интервал, защищаемый от пересечений: [start-bufferBefore, end+bufferAfter)
func (b *Booking) ProtectedInterval() Interval {
	return b.Interval.Grow(b.BufferBefore, b.BufferAfter)
}

// ActiveProtectedIntervals возвращает защищённые интервалы активных бронирований
func ActiveProtectedIntervals(bookings []*Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		intervals = append(intervals, b.ProtectedInterval())
	}
	return intervals
}

// EmployeeBookingsFilter фильтр бронирований сотрудника
type EmployeeBookingsFilter struct {
	TenantID        int64      // Обязательный параметр
	EmployeeID      int64      // Обязательный параметр
	From            *time.Time // Бронирования, защищённый интервал которых заканчивается после From
	To              *time.Time // Бронирования, защищённый интервал которых начинается до To
	IncludeInactive bool       // Включать ли отменённые бронирования
}
