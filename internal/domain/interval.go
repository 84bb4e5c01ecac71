package domain

import (
	"fmt"
	"slices"
	"time"
)

// Interval полуоткрытый интервал времени [Start, End).
// Смежные интервалы (a.End == b.Start) не пересекаются.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал, приводя границы к UTC.
// Возвращает ErrInvalidInterval, если start >= end.
func NewInterval(start, end time.Time) (Interval, error) {
	i := Interval{Start: start.UTC(), End: end.UTC()}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// MustInterval как NewInterval, но паникует при ошибке (для тестов и констант)
func MustInterval(start, end time.Time) Interval {
	i, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// Validate проверяет, что интервал непустой
func (i Interval) Validate() error {
	if i.Start.IsZero() || i.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInterval)
	}
	if !i.Start.Before(i.End) {
		return fmt.Errorf("%w: start %s must be before end %s",
			ErrInvalidInterval, i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlaps проверяет пересечение с другим интервалом
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// Duration длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Contains возвращает true, если other целиком лежит внутри i
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Grow расширяет интервал на before в начале и after в конце
func (i Interval) Grow(before, after time.Duration) Interval {
	return Interval{Start: i.Start.Add(-before), End: i.End.Add(after)}
}

// Clip обрезает интервал по границам bounds. ok == false, если пересечения нет.
func (i Interval) Clip(bounds Interval) (Interval, bool) {
	if !Overlaps(i, bounds) {
		return Interval{}, false
	}
	clipped := i
	if clipped.Start.Before(bounds.Start) {
		clipped.Start = bounds.Start
	}
	if clipped.End.After(bounds.End) {
		clipped.End = bounds.End
	}
	return clipped, true
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// MergeIntervals сортирует интервалы и объединяет пересекающиеся и смежные.
// Исходный слайс не изменяется.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start.After(current.End) {
			merged = append(merged, current)
			current = next
			continue
		}
		if next.End.After(current.End) {
			current.End = next.End
		}
	}
	merged = append(merged, current)

	return merged
}

// Subtract возвращает упорядоченные части a, не покрытые ни одним из blockers
func Subtract(a Interval, blockers []Interval) []Interval {
	free := make([]Interval, 0, 1)
	cursor := a.Start

	for _, b := range MergeIntervals(blockers) {
		if !b.End.After(cursor) {
			continue
		}
		if !b.Start.Before(a.End) {
			break
		}
		if b.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		cursor = b.End
		if !cursor.Before(a.End) {
			return free
		}
	}

	if cursor.Before(a.End) {
		free = append(free, Interval{Start: cursor, End: a.End})
	}

	return free
}
