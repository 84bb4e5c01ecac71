package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
)

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func iv(startHour, startMinute, endHour, endMinute int) domain.Interval {
	return domain.MustInterval(at(startHour, startMinute), at(endHour, endMinute))
}

type fakeAbsenceReader struct {
	absences []*domain.Absence
	err      error
	filter   *domain.AbsenceRangeFilter
}

func (f *fakeAbsenceReader) ListForEmployee(_ context.Context, _ tenancy.Scope, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error) {
	f.filter = filter
	return f.absences, f.err
}

type decisionCounter map[string]int

func (c decisionCounter) ObserveDecision(kind, outcome string) {
	c[kind+"/"+outcome]++
}

func TestCheckBooking(t *testing.T) {
	absences := []domain.Interval{iv(12, 0, 14, 0)}
	bookings := []domain.Interval{iv(15, 0, 16, 0), iv(9, 0, 10, 0)}

	tests := []struct {
		name      string
		candidate domain.Interval
		want      Decision
	}{
		{name: "free time", candidate: iv(10, 0, 11, 0), want: Admit()},
		{name: "inside absence", candidate: iv(12, 30, 13, 0), want: Reject(ReasonBlockedByTimeOff, iv(12, 0, 14, 0))},
		{name: "adjacent to absence", candidate: iv(14, 0, 15, 0), want: Admit()},
		{name: "ends where absence starts", candidate: iv(11, 0, 12, 0), want: Admit()},
		{name: "overlaps booking", candidate: iv(15, 30, 16, 30), want: Reject(ReasonBlockedByBooking, iv(15, 0, 16, 0))},
		{
			name:      "absence reported before booking",
			candidate: iv(13, 0, 15, 30),
			want:      Reject(ReasonBlockedByTimeOff, iv(12, 0, 14, 0)),
		},
		{
			name:      "absence wins over earlier booking",
			candidate: iv(9, 30, 15, 30),
			want:      Reject(ReasonBlockedByTimeOff, iv(12, 0, 14, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckBooking(tt.candidate, absences, bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := CheckBooking(iv(9, 30, 15, 30), nil, bookings)
	require.NoError(t, err)
	assert.Equal(t, Reject(ReasonBlockedByBooking, iv(9, 0, 10, 0)), got)
}

func TestCheckBooking_InvalidCandidate(t *testing.T) {
	_, err := CheckBooking(domain.Interval{Start: at(10, 0), End: at(10, 0)}, nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInterval)

	_, err = CheckAbsence(domain.Interval{Start: at(11, 0), End: at(10, 0)}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestCheckAbsence(t *testing.T) {
	bookings := []domain.Interval{iv(10, 0, 11, 0)}

	got, err := CheckAbsence(iv(9, 0, 12, 0), bookings)
	require.NoError(t, err)
	assert.False(t, got.Admissible)
	assert.Equal(t, ReasonBlockedByBooking, got.Reason)

	got, err = CheckAbsence(iv(11, 0, 12, 0), bookings)
	require.NoError(t, err)
	assert.True(t, got.Admissible)
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, Admit().Err())

	err := Reject(ReasonBlockedByBooking, iv(10, 0, 11, 0)).Err()
	var rejection *RejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, ReasonBlockedByBooking, rejection.Reason)
	assert.Equal(t, iv(10, 0, 11, 0), rejection.Conflict)
}

func TestResolver_CanPlaceBooking(t *testing.T) {
	scope := tenancytest.Scope(t, 1, 10)
	reader := &fakeAbsenceReader{absences: []*domain.Absence{{Interval: iv(12, 0, 13, 0)}}}
	counter := decisionCounter{}
	resolver := NewResolver(reader, counter)

	decision, err := resolver.CanPlaceBooking(context.Background(), scope, iv(12, 15, 12, 45), nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonBlockedByTimeOff, decision.Reason)
	assert.Equal(t, &domain.AbsenceRangeFilter{From: at(12, 15), To: at(12, 45)}, reader.filter)

	decision, err = resolver.CanPlaceBooking(context.Background(), scope, iv(13, 0, 14, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Admissible)

	assert.Equal(t, decisionCounter{"booking/BLOCKED_BY_TIMEOFF": 1, "booking/admitted": 1}, counter)
}

func TestResolver_CanPlaceBooking_Errors(t *testing.T) {
	reader := &fakeAbsenceReader{err: errors.New("db is down")}
	resolver := NewResolver(reader, nil)

	_, err := resolver.CanPlaceBooking(context.Background(), tenancytest.Scope(t, 1, 10), iv(9, 0, 10, 0), nil)
	require.ErrorIs(t, err, ErrAbsenceLookup)

	_, err = resolver.CanPlaceBooking(context.Background(), tenancy.Scope{}, iv(9, 0, 10, 0), nil)
	require.ErrorIs(t, err, tenancy.ErrInvalidScope)

	_, err = resolver.CanPlaceAbsence(tenancy.Scope{}, iv(9, 0, 10, 0), nil)
	require.ErrorIs(t, err, tenancy.ErrInvalidScope)
}

func TestResolver_CanPlaceAbsence(t *testing.T) {
	counter := decisionCounter{}
	resolver := NewResolver(&fakeAbsenceReader{}, counter)
	scope := tenancytest.Scope(t, 1, 10)

	decision, err := resolver.CanPlaceAbsence(scope, iv(9, 0, 18, 0), []domain.Interval{iv(16, 0, 17, 0), iv(10, 0, 11, 0)})
	require.NoError(t, err)
	assert.Equal(t, Reject(ReasonBlockedByBooking, iv(10, 0, 11, 0)), decision)
	assert.Equal(t, 1, counter["absence/BLOCKED_BY_BOOKING"])
}
