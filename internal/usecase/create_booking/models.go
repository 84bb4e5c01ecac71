package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	TenantID   int64     // ID тенанта
	EmployeeID int64     // ID сотрудника
	ServiceID  int64     // ID услуги
	CustomerID int64     // ID клиента (из заголовка X-User-ID)
	StartTime  time.Time // Начало услуги
	Notes      *string   // Дополнительные заметки (опционально)
}
