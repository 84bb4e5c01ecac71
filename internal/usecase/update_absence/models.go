package update_absence

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на изменение отсутствия.
// Непереданные поля остаются без изменений.
type Request struct {
	TenantID   int64
	EmployeeID int64
	AbsenceID  uuid.UUID
	StartTime  *time.Time
	EndTime    *time.Time
	Reason     *string
}

// changesInterval возвращает true, если запрос меняет границы отсутствия
func (r *Request) changesInterval() bool {
	return r.StartTime != nil || r.EndTime != nil
}
