package availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

// AbsenceReader источник отсутствий сотрудника (вызывается внутри транзакции вызывающего)
type AbsenceReader interface {
	ListForEmployee(ctx context.Context, scope tenancy.Scope, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error)
}

// DecisionRecorder счётчик решений резолвера
type DecisionRecorder interface {
	ObserveDecision(kind, outcome string)
}
