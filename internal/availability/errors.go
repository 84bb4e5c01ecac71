package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidSlotRequest некорректные параметры генерации слотов
	ErrInvalidSlotRequest = errors.New("availability: invalid slot request")

	// ErrAbsenceLookup не удалось загрузить отсутствия сотрудника
	ErrAbsenceLookup = errors.New("availability: failed to load absences")
)

// RejectionError отказ резолвера в виде ошибки, когда вызывающему удобнее вернуть error
type RejectionError struct {
	Reason   RejectionReason
	Conflict domain.Interval
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("availability: %s by %s", e.Reason, e.Conflict)
}
