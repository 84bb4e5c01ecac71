package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/absence"
)

// Absences отсутствия в памяти
type Absences struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Absence
	now   func() time.Time
}

// NewAbsences создает пустое хранилище отсутствий
func NewAbsences() *Absences {
	return &Absences{items: make(map[uuid.UUID]domain.Absence), now: time.Now}
}

// Create сохраняет отсутствие; пересечение с другим отсутствием сотрудника - absence.ErrOverlap
func (s *Absences) Create(_ context.Context, a *domain.Absence) (*domain.Absence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOverlap(a); err != nil {
		return nil, err
	}

	a.CreatedAt = s.now().UTC()
	a.UpdatedAt = a.CreatedAt
	s.items[a.ID] = *a

	created := *a
	return &created, nil
}

// GetByID получает отсутствие сотрудника
func (s *Absences) GetByID(_ context.Context, tenantID, employeeID int64, id uuid.UUID) (*domain.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.items[id]
	if !ok || a.TenantID != tenantID || a.EmployeeID != employeeID {
		return nil, absence.ErrAbsenceNotFound
	}
	return &a, nil
}

// ListForEmployee получает отсутствия сотрудника (фильтр включительный)
func (s *Absences) ListForEmployee(_ context.Context, tenantID, employeeID int64, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Absence, 0)
	for _, a := range s.items {
		if a.TenantID != tenantID || a.EmployeeID != employeeID {
			continue
		}
		if filter != nil && (a.Interval.End.Before(filter.From) || a.Interval.Start.After(filter.To)) {
			continue
		}
		item := a
		result = append(result, &item)
	}

	slices.SortFunc(result, func(a, b *domain.Absence) int {
		return a.Interval.Start.Compare(b.Interval.Start)
	})
	return result, nil
}

// Update перезаписывает интервал и причину
func (s *Absences) Update(_ context.Context, a *domain.Absence) (*domain.Absence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[a.ID]
	if !ok || existing.TenantID != a.TenantID || existing.EmployeeID != a.EmployeeID {
		return nil, absence.ErrAbsenceNotFound
	}
	if err := s.checkOverlap(a); err != nil {
		return nil, err
	}

	existing.Interval = a.Interval
	existing.Reason = a.Reason
	existing.UpdatedAt = s.now().UTC()
	s.items[a.ID] = existing

	updated := existing
	return &updated, nil
}

// Delete удаляет отсутствие
func (s *Absences) Delete(_ context.Context, tenantID, employeeID int64, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok || a.TenantID != tenantID || a.EmployeeID != employeeID {
		return absence.ErrAbsenceNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *Absences) checkOverlap(a *domain.Absence) error {
	for id, existing := range s.items {
		if id == a.ID || existing.TenantID != a.TenantID || existing.EmployeeID != a.EmployeeID {
			continue
		}
		if domain.Overlaps(existing.Interval, a.Interval) {
			return fmt.Errorf("%w: %s overlaps %s", absence.ErrOverlap, a.Interval, existing.Interval)
		}
	}
	return nil
}
