package memstore

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
)

type employeeKey struct {
	tenantID   int64
	employeeID int64
}

// WorkingHours рабочие недели в памяти
type WorkingHours struct {
	mu    sync.RWMutex
	weeks map[employeeKey]domain.WorkingWeek
}

// NewWorkingHours создает пустое хранилище рабочих часов
func NewWorkingHours() *WorkingHours {
	return &WorkingHours{weeks: make(map[employeeKey]domain.WorkingWeek)}
}

// Get получает неделю сотрудника
func (s *WorkingHours) Get(_ context.Context, tenantID, employeeID int64) (domain.WorkingWeek, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	week, ok := s.weeks[employeeKey{tenantID, employeeID}]
	if !ok {
		return domain.WorkingWeek{}, workinghours.ErrWeekNotFound
	}
	return week, nil
}

// Upsert заменяет неделю сотрудника целиком
func (s *WorkingHours) Upsert(_ context.Context, tenantID, employeeID int64, week domain.WorkingWeek) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weeks[employeeKey{tenantID, employeeID}] = week
	return nil
}
