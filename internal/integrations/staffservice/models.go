package staffservice

import "time"

// Employee модель сотрудника из StaffService
type Employee struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenant_id"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

// Service модель услуги из StaffService
type Service struct {
	ID                  int64   `json:"id"`
	TenantID            int64   `json:"tenant_id"`
	Name                string  `json:"name"`
	DurationMinutes     int     `json:"duration_minutes"`
	BufferBeforeMinutes int     `json:"buffer_before_minutes"`
	BufferAfterMinutes  int     `json:"buffer_after_minutes"`
	EmployeeIDs         []int64 `json:"employee_ids"` // Сотрудники, оказывающие услугу (пусто = все)
}

// Duration длительность услуги
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// BufferBefore буфер перед услугой
func (s *Service) BufferBefore() time.Duration {
	return time.Duration(s.BufferBeforeMinutes) * time.Minute
}

// BufferAfter буфер после услуги
func (s *Service) BufferAfter() time.Duration {
	return time.Duration(s.BufferAfterMinutes) * time.Minute
}

// PerformedBy возвращает true, если сотрудник оказывает эту услугу
func (s *Service) PerformedBy(employeeID int64) bool {
	if len(s.EmployeeIDs) == 0 {
		return true
	}
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
