package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Policies политики бронирования в памяти
type Policies struct {
	mu     sync.RWMutex
	nextID int64
	items  map[employeeKey]domain.BookingPolicy // employeeID == 0 - политика тенанта
	now    func() time.Time
}

// NewPolicies создает пустое хранилище политик
func NewPolicies() *Policies {
	return &Policies{items: make(map[employeeKey]domain.BookingPolicy), now: time.Now}
}

func policyKey(tenantID int64, employeeID *int64) employeeKey {
	if employeeID == nil {
		return employeeKey{tenantID: tenantID}
	}
	return employeeKey{tenantID: tenantID, employeeID: *employeeID}
}

// GetByTenantAndEmployee получает политику конкретного уровня
func (s *Policies) GetByTenantAndEmployee(_ context.Context, tenantID int64, employeeID *int64) (*domain.BookingPolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[policyKey(tenantID, employeeID)]
	if !ok {
		return nil, policy.ErrPolicyNotFound
	}
	return &p, nil
}

// GetWithHierarchy сотрудник -> тенант
func (s *Policies) GetWithHierarchy(ctx context.Context, tenantID, employeeID int64) (*domain.BookingPolicy, error) {
	if p, err := s.GetByTenantAndEmployee(ctx, tenantID, &employeeID); err == nil {
		return p, nil
	}
	return s.GetByTenantAndEmployee(ctx, tenantID, nil)
}

// ListByTenant получает все политики тенанта (политика тенанта первой)
func (s *Policies) ListByTenant(_ context.Context, tenantID int64) ([]*domain.BookingPolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BookingPolicy, 0)
	for key, p := range s.items {
		if key.tenantID != tenantID {
			continue
		}
		item := p
		result = append(result, &item)
	}

	slices.SortFunc(result, func(a, b *domain.BookingPolicy) int {
		return cmp.Compare(ptr.Deref(a.EmployeeID, 0), ptr.Deref(b.EmployeeID, 0))
	})
	return result, nil
}

// Upsert создает или перезаписывает политику уровня
func (s *Policies) Upsert(_ context.Context, p *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := policyKey(p.TenantID, p.EmployeeID)
	now := s.now().UTC()
	if existing, ok := s.items[key]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		s.nextID++
		p.ID = s.nextID
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.items[key] = *p

	saved := *p
	return &saved, nil
}

// Delete удаляет политику уровня
func (s *Policies) Delete(_ context.Context, tenantID int64, employeeID *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := policyKey(tenantID, employeeID)
	if _, ok := s.items[key]; !ok {
		return policy.ErrPolicyNotFound
	}
	delete(s.items, key)
	return nil
}
