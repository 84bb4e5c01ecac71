package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantID   int64      // ID тенанта
	EmployeeID int64      // ID сотрудника
	ServiceID  int64      // ID услуги
	From       *time.Time // Начало горизонта (по умолчанию - сейчас)
	To         *time.Time // Конец горизонта (по умолчанию - From + горизонт из конфигурации)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	TenantID        int64
	EmployeeID      int64
	ServiceID       int64
	From            time.Time // Фактический горизонт после ограничений политики
	To              time.Time
	DurationMinutes int
	Slots           []Slot
}

// Slot модель временного слота (время самой услуги, без буферов)
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}
