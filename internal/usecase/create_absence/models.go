package create_absence

import "time"

// Request модель запроса на создание отсутствия
type Request struct {
	TenantID   int64
	EmployeeID int64
	StartTime  time.Time
	EndTime    time.Time
	Reason     *string
}
