package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

// RejectionReason причина отказа
type RejectionReason string

const (
	ReasonBlockedByTimeOff RejectionReason = "BLOCKED_BY_TIMEOFF"
	ReasonBlockedByBooking RejectionReason = "BLOCKED_BY_BOOKING"
)

const (
	kindBooking = "booking"
	kindAbsence = "absence"
)

// Decision результат проверки допустимости интервала.
// Отказ - обычное значение, а не ошибка: для загруженного календаря это частый случай.
type Decision struct {
	Admissible bool
	Reason     RejectionReason
	Conflict   *domain.Interval // Самый ранний конфликтующий интервал
}

// Admit допустимое решение
func Admit() Decision {
	return Decision{Admissible: true}
}

// Reject отказ с указанием причины и конфликта
func Reject(reason RejectionReason, conflict domain.Interval) Decision {
	return Decision{Reason: reason, Conflict: &conflict}
}

// Outcome строковое представление решения для метрик и логов
func (d Decision) Outcome() string {
	if d.Admissible {
		return "admitted"
	}
	return string(d.Reason)
}

// Err возвращает *RejectionError для отказа и nil для допустимого решения
func (d Decision) Err() error {
	if d.Admissible {
		return nil
	}
	err := &RejectionError{Reason: d.Reason}
	if d.Conflict != nil {
		err.Conflict = *d.Conflict
	}
	return err
}

// CheckBooking решает, можно ли поставить бронирование с защищённым интервалом candidate.
// Сначала проверяются отсутствия, затем активные бронирования.
func CheckBooking(candidate domain.Interval, absences, activeBookings []domain.Interval) (Decision, error) {
	if err := candidate.Validate(); err != nil {
		return Decision{}, err
	}

	if conflict, ok := earliestConflict(candidate, absences); ok {
		return Reject(ReasonBlockedByTimeOff, conflict), nil
	}
	if conflict, ok := earliestConflict(candidate, activeBookings); ok {
		return Reject(ReasonBlockedByBooking, conflict), nil
	}

	return Admit(), nil
}

// CheckAbsence решает, можно ли создать отсутствие поверх активных бронирований
func CheckAbsence(candidate domain.Interval, activeBookings []domain.Interval) (Decision, error) {
	if err := candidate.Validate(); err != nil {
		return Decision{}, err
	}

	if conflict, ok := earliestConflict(candidate, activeBookings); ok {
		return Reject(ReasonBlockedByBooking, conflict), nil
	}

	return Admit(), nil
}

func earliestConflict(candidate domain.Interval, intervals []domain.Interval) (domain.Interval, bool) {
	var (
		conflict domain.Interval
		found    bool
	)
	for _, i := range intervals {
		if !domain.Overlaps(candidate, i) {
			continue
		}
		if !found || i.Start.Before(conflict.Start) {
			conflict = i
			found = true
		}
	}
	return conflict, found
}

// Resolver резолвер конфликтов в рамках подтверждённого Scope.
// Не пишет в хранилище: проверку и запись вызывающий выполняет в одной транзакции
// и повторяет проверку непосредственно перед коммитом.
type Resolver struct {
	absences AbsenceReader
	recorder DecisionRecorder
}

// NewResolver создает новый экземпляр Resolver. recorder может быть nil.
func NewResolver(absences AbsenceReader, recorder DecisionRecorder) *Resolver {
	return &Resolver{
		absences: absences,
		recorder: recorder,
	}
}

// CanPlaceBooking проверяет candidate (защищённый интервал) против отсутствий сотрудника
// и переданных активных бронирований
func (r *Resolver) CanPlaceBooking(ctx context.Context, scope tenancy.Scope, candidate domain.Interval, activeBookings []domain.Interval) (Decision, error) {
	if scope.IsZero() {
		return Decision{}, fmt.Errorf("%w: CanPlaceBooking - empty scope", tenancy.ErrInvalidScope)
	}
	if err := candidate.Validate(); err != nil {
		return Decision{}, err
	}

	absences, err := r.absences.ListForEmployee(ctx, scope, &domain.AbsenceRangeFilter{
		From: candidate.Start,
		To:   candidate.End,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("%w: CanPlaceBooking - %s: %v", ErrAbsenceLookup, scope, err)
	}

	decision, err := CheckBooking(candidate, domain.AbsenceIntervals(absences), activeBookings)
	if err != nil {
		return Decision{}, err
	}

	r.record(kindBooking, decision)
	return decision, nil
}

// CanPlaceAbsence проверяет, что отсутствие не перекрывает активные бронирования сотрудника
func (r *Resolver) CanPlaceAbsence(scope tenancy.Scope, candidate domain.Interval, activeBookings []domain.Interval) (Decision, error) {
	if scope.IsZero() {
		return Decision{}, fmt.Errorf("%w: CanPlaceAbsence - empty scope", tenancy.ErrInvalidScope)
	}

	decision, err := CheckAbsence(candidate, activeBookings)
	if err != nil {
		return Decision{}, err
	}

	r.record(kindAbsence, decision)
	return decision, nil
}

func (r *Resolver) record(kind string, decision Decision) {
	if r.recorder == nil {
		return
	}
	r.recorder.ObserveDecision(kind, decision.Outcome())
}
