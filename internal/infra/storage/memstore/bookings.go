package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
)

// Bookings бронирования в памяти
type Bookings struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Booking
	now    func() time.Time
}

// NewBookings создает пустое хранилище бронирований
func NewBookings() *Bookings {
	return &Bookings{items: make(map[int64]domain.Booking), now: time.Now}
}

// Create сохраняет бронирование; пересечение защищённых интервалов активных бронирований
// сотрудника отклоняется с booking.ErrSlotNotAvailable
func (s *Bookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.IsActive() {
		protected := b.ProtectedInterval()
		for _, existing := range s.items {
			if existing.TenantID != b.TenantID || existing.EmployeeID != b.EmployeeID || !existing.IsActive() {
				continue
			}
			if domain.Overlaps(existing.ProtectedInterval(), protected) {
				return nil, fmt.Errorf("%w: Create - overlaps booking id=%d", booking.ErrSlotNotAvailable, existing.ID)
			}
		}
	}

	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = s.now().UTC()
	b.UpdatedAt = b.CreatedAt
	s.items[b.ID] = *b

	created := *b
	return &created, nil
}

// GetByID получает бронирование сотрудника
func (s *Bookings) GetByID(_ context.Context, tenantID, employeeID, id int64) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.items[id]
	if !ok || b.TenantID != tenantID || b.EmployeeID != employeeID {
		return nil, booking.ErrBookingNotFound
	}
	return &b, nil
}

// ListForEmployee получает бронирования сотрудника, защищённый интервал которых пересекается с [From, To)
func (s *Bookings) ListForEmployee(_ context.Context, filter domain.EmployeeBookingsFilter) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range s.items {
		if b.TenantID != filter.TenantID || b.EmployeeID != filter.EmployeeID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		protected := b.ProtectedInterval()
		if filter.From != nil && !protected.End.After(*filter.From) {
			continue
		}
		if filter.To != nil && !protected.Start.Before(*filter.To) {
			continue
		}
		item := b
		result = append(result, &item)
	}

	slices.SortFunc(result, func(a, b *domain.Booking) int {
		if c := a.Interval.Start.Compare(b.Interval.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

// Cancel отменяет бронирование в статусе pending/confirmed
func (s *Bookings) Cancel(_ context.Context, tenantID, employeeID, id int64, reason *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.items[id]
	if !ok || b.TenantID != tenantID || b.EmployeeID != employeeID || !b.CanBeCancelled() {
		return booking.ErrCannotCancel
	}

	now := s.now().UTC()
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	s.items[id] = b
	return nil
}
