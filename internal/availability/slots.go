package availability

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SlotRequest параметры генерации слотов
type SlotRequest struct {
	ServiceDuration time.Duration
	BufferBefore    time.Duration
	BufferAfter     time.Duration
	Step            time.Duration   // 0 = длительность услуги
	Horizon         domain.Interval // [from, to)
	Now             time.Time       // Слоты, начинающиеся раньше Now, отбрасываются
}

// Validate проверяет параметры запроса
func (r SlotRequest) Validate() error {
	if r.ServiceDuration <= 0 {
		return fmt.Errorf("%w: service duration must be positive, got %s", ErrInvalidSlotRequest, r.ServiceDuration)
	}
	if r.BufferBefore < 0 || r.BufferAfter < 0 {
		return fmt.Errorf("%w: buffers must not be negative", ErrInvalidSlotRequest)
	}
	if r.Step < 0 {
		return fmt.Errorf("%w: step must not be negative, got %s", ErrInvalidSlotRequest, r.Step)
	}
	if err := r.Horizon.Validate(); err != nil {
		return fmt.Errorf("%w: horizon: %v", ErrInvalidSlotRequest, err)
	}
	return nil
}

func (r SlotRequest) step() time.Duration {
	if r.Step > 0 {
		return r.Step
	}
	return r.ServiceDuration
}

// GenerateSlots возвращает ленивую последовательность слотов (время услуги [s, s+duration)).
//
// Для каждого календарного дня горизонта (UTC) из рабочих окон вычитаются отсутствия
// и защищённые интервалы бронирований. Внутри каждого свободного участка перебираются
// начала с шагом Step от начала участка так, чтобы [s-bufferBefore, s+duration+bufferAfter)
// целиком помещался и в участок, и в горизонт. Сетка не сдвигается началом горизонта.
//
// Последовательность можно перебирать повторно: результат тот же при тех же аргументах.
func GenerateSlots(week domain.WorkingWeek, absences, bookings []domain.Interval, req SlotRequest) (iter.Seq[domain.Interval], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	blockers := domain.MergeIntervals(slices.Concat(absences, bookings))
	horizon := domain.Interval{Start: req.Horizon.Start.UTC(), End: req.Horizon.End.UTC()}
	now := req.Now.UTC()
	step := req.step()
	tail := req.ServiceDuration + req.BufferAfter

	return func(yield func(domain.Interval) bool) {
		for day := startOfDay(horizon.Start); day.Before(horizon.End); day = day.AddDate(0, 0, 1) {
			for _, w := range week.DayWindows(day.Weekday()) {
				window := w.On(day)
				if !window.Overlaps(horizon) {
					continue
				}

				for _, free := range domain.Subtract(window, blockers) {
					for s := free.Start.Add(req.BufferBefore); !s.Add(tail).After(free.End); s = s.Add(step) {
						if s.Add(tail).After(horizon.End) {
							break
						}
						if s.Add(-req.BufferBefore).Before(horizon.Start) || s.Before(now) {
							continue
						}
						if !yield(domain.Interval{Start: s, End: s.Add(req.ServiceDuration)}) {
							return
						}
					}
				}
			}
		}
	}, nil
}

// CollectSlots собирает последовательность в слайс (пустой, а не nil, если слотов нет)
func CollectSlots(seq iter.Seq[domain.Interval]) []domain.Interval {
	slots := slices.Collect(seq)
	if slots == nil {
		return []domain.Interval{}
	}
	return slots
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
