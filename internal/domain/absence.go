package domain

import (
	"time"

	"github.com/google/uuid"
)

// Absence отсутствие сотрудника (отпуск, блокировка времени) на абсолютном интервале
type Absence struct {
	ID         uuid.UUID
	TenantID   int64
	EmployeeID int64
	Interval   Interval
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AbsenceRangeFilter выбирает отсутствия, пересекающиеся с [From, To] (включительно с обеих сторон):
// end_time >= From AND start_time <= To
type AbsenceRangeFilter struct {
	From time.Time
	To   time.Time
}

// AbsenceIntervals возвращает интервалы отсутствий
func AbsenceIntervals(absences []*Absence) []Interval {
	intervals := make([]Interval, 0, len(absences))
	for _, a := range absences {
		intervals = append(intervals, a.Interval)
	}
	return intervals
}
