package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func iv(startHour, startMinute, endHour, endMinute int) Interval {
	return MustInterval(at(startHour, startMinute), at(endHour, endMinute))
}

func TestNewInterval(t *testing.T) {
	_, err := NewInterval(at(10, 0), at(10, 0))
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(at(11, 0), at(10, 0))
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(time.Time{}, at(10, 0))
	require.ErrorIs(t, err, ErrInvalidInterval)

	moscow := time.FixedZone("MSK", 3*60*60)
	i, err := NewInterval(time.Date(2025, 10, 13, 12, 0, 0, 0, moscow), time.Date(2025, 10, 13, 13, 0, 0, 0, moscow))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, i.Start.Location())
	assert.Equal(t, at(9, 0), i.Start)
	assert.Equal(t, time.Hour, i.Duration())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "partial overlap", a: iv(9, 0, 11, 0), b: iv(10, 0, 12, 0), want: true},
		{name: "containment", a: iv(9, 0, 11, 0), b: iv(10, 0, 10, 30), want: true},
		{name: "identical", a: iv(9, 0, 10, 0), b: iv(9, 0, 10, 0), want: true},
		{name: "touching at end", a: iv(9, 0, 10, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "touching at start", a: iv(10, 0, 11, 0), b: iv(9, 0, 10, 0), want: false},
		{name: "disjoint", a: iv(9, 0, 10, 0), b: iv(12, 0, 13, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlaps_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := func() Interval {
		start := monday.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		return MustInterval(start, start.Add(time.Duration(1+rng.Intn(240))*time.Minute))
	}

	for n := 0; n < 500; n++ {
		a, b := random(), random()
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "symmetry for %s and %s", a, b)

		after := MustInterval(a.End, a.End.Add(time.Nanosecond))
		before := MustInterval(a.Start.Add(-time.Nanosecond), a.Start)
		assert.False(t, Overlaps(a, after), "touching after %s", a)
		assert.False(t, Overlaps(a, before), "touching before %s", a)
	}
}

func TestMergeIntervals(t *testing.T) {
	merged := MergeIntervals([]Interval{
		iv(13, 0, 14, 0),
		iv(9, 0, 10, 0),
		iv(10, 0, 11, 0),
		iv(9, 30, 9, 45),
		iv(15, 0, 16, 0),
		iv(13, 30, 15, 0),
	})

	assert.Equal(t, []Interval{iv(9, 0, 11, 0), iv(13, 0, 16, 0)}, merged)
	assert.Nil(t, MergeIntervals(nil))
}

func TestSubtract(t *testing.T) {
	day := iv(9, 0, 17, 0)

	tests := []struct {
		name     string
		blockers []Interval
		want     []Interval
	}{
		{
			name: "no blockers",
			want: []Interval{day},
		},
		{
			name:     "blocker in the middle",
			blockers: []Interval{iv(10, 0, 11, 0)},
			want:     []Interval{iv(9, 0, 10, 0), iv(11, 0, 17, 0)},
		},
		{
			name:     "blockers overlapping edges and each other",
			blockers: []Interval{iv(8, 0, 9, 30), iv(12, 0, 13, 0), iv(12, 30, 14, 0), iv(16, 0, 18, 0)},
			want:     []Interval{iv(9, 30, 12, 0), iv(14, 0, 16, 0)},
		},
		{
			name:     "adjacent blockers merge",
			blockers: []Interval{iv(10, 0, 11, 0), iv(11, 0, 12, 0)},
			want:     []Interval{iv(9, 0, 10, 0), iv(12, 0, 17, 0)},
		},
		{
			name:     "fully covered",
			blockers: []Interval{iv(8, 0, 18, 0)},
			want:     []Interval{},
		},
		{
			name:     "blockers outside",
			blockers: []Interval{iv(6, 0, 9, 0), iv(17, 0, 19, 0)},
			want:     []Interval{day},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(day, tt.blockers))
		})
	}
}

func TestInterval_GrowClipContains(t *testing.T) {
	i := iv(10, 0, 11, 0)

	assert.Equal(t, iv(9, 45, 11, 30), i.Grow(15*time.Minute, 30*time.Minute))

	clipped, ok := iv(8, 0, 10, 30).Clip(iv(9, 0, 17, 0))
	require.True(t, ok)
	assert.Equal(t, iv(9, 0, 10, 30), clipped)

	_, ok = iv(8, 0, 9, 0).Clip(iv(9, 0, 17, 0))
	assert.False(t, ok)

	assert.True(t, iv(9, 0, 17, 0).Contains(i))
	assert.True(t, i.Contains(i))
	assert.False(t, i.Contains(iv(10, 30, 11, 30)))
}
