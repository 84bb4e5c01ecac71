package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WeekOrder порядок дней в недельной конфигурации: понедельник..воскресенье
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// TimeWindow рабочее окно внутри дня [Start, End) в терминах времени суток
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// On переводит окно в абсолютный интервал в указанный день (UTC)
func (w TimeWindow) On(date time.Time) Interval {
	return Interval{Start: w.Start.On(date), End: w.End.On(date)}
}

// DayConfig конфигурация одного дня недели
type DayConfig struct {
	Weekday time.Weekday
	Enabled bool
	Windows []TimeWindow
}

// WorkingWeek неизменяемая недельная конфигурация рабочих часов сотрудника.
// Создаётся только через NewWorkingWeek/DefaultWorkingWeek и заменяется целиком при сохранении.
type WorkingWeek struct {
	days [7]DayConfig
}

// NewWorkingWeek валидирует конфигурацию недели (понедельник..воскресенье) и создает value object.
// Окна внутри дня должны быть упорядочены и не пересекаться; выключенный день не содержит окон.
func NewWorkingWeek(days [7]DayConfig) (WorkingWeek, error) {
	var week WorkingWeek

	for i, day := range days {
		if day.Weekday != WeekOrder[i] {
			return WorkingWeek{}, fmt.Errorf("%w: day %d must be %s, got %s",
				ErrInvalidWorkingHours, i, WeekOrder[i], day.Weekday)
		}

		if !day.Enabled && len(day.Windows) > 0 {
			return WorkingWeek{}, fmt.Errorf("%w: %s is disabled but has %d windows",
				ErrInvalidWorkingHours, day.Weekday, len(day.Windows))
		}

		for k, w := range day.Windows {
			if err := w.Start.Validate(); err != nil {
				return WorkingWeek{}, fmt.Errorf("%w: %s window %d start: %v", ErrInvalidWorkingHours, day.Weekday, k, err)
			}
			if err := w.End.Validate(); err != nil {
				return WorkingWeek{}, fmt.Errorf("%w: %s window %d end: %v", ErrInvalidWorkingHours, day.Weekday, k, err)
			}
			if !w.Start.IsBefore(w.End) {
				return WorkingWeek{}, fmt.Errorf("%w: %s window %s-%s is empty",
					ErrInvalidWorkingHours, day.Weekday, w.Start, w.End)
			}
			if k > 0 && w.Start.IsBefore(day.Windows[k-1].End) {
				return WorkingWeek{}, fmt.Errorf("%w: %s windows %s-%s and %s-%s overlap or are unsorted",
					ErrInvalidWorkingHours, day.Weekday,
					day.Windows[k-1].Start, day.Windows[k-1].End, w.Start, w.End)
			}
		}

		week.days[i] = DayConfig{
			Weekday: day.Weekday,
			Enabled: day.Enabled,
			Windows: slices.Clone(day.Windows),
		}
	}

	return week, nil
}

// DefaultWorkingWeek рабочие часы нового сотрудника: пн-пт 09:00-18:00, выходные выключены
func DefaultWorkingWeek() WorkingWeek {
	var days [7]DayConfig
	for i, wd := range WeekOrder {
		days[i] = DayConfig{Weekday: wd}
		if wd != time.Saturday && wd != time.Sunday {
			days[i].Enabled = true
			days[i].Windows = []TimeWindow{{
				Start: types.MustTimeString(DefaultWorkdayStart),
				End:   types.MustTimeString(DefaultWorkdayEnd),
			}}
		}
	}

	week, err := NewWorkingWeek(days)
	if err != nil {
		panic(err)
	}
	return week
}

// Days возвращает копию конфигурации всех дней (понедельник..воскресенье)
func (w WorkingWeek) Days() [7]DayConfig {
	var days [7]DayConfig
	for i, d := range w.days {
		days[i] = DayConfig{Weekday: d.Weekday, Enabled: d.Enabled, Windows: slices.Clone(d.Windows)}
	}
	return days
}

// Day возвращает конфигурацию дня недели
func (w WorkingWeek) Day(weekday time.Weekday) DayConfig {
	d := w.days[weekIndex(weekday)]
	return DayConfig{Weekday: d.Weekday, Enabled: d.Enabled, Windows: slices.Clone(d.Windows)}
}

// DayWindows возвращает рабочие окна дня недели или пустой слайс, если день выключен
func (w WorkingWeek) DayWindows(weekday time.Weekday) []TimeWindow {
	d := w.days[weekIndex(weekday)]
	if !d.Enabled {
		return []TimeWindow{}
	}
	return slices.Clone(d.Windows)
}

// HasEnabledDays возвращает true, если хотя бы один день включен и содержит окна
func (w WorkingWeek) HasEnabledDays() bool {
	for _, d := range w.days {
		if d.Enabled && len(d.Windows) > 0 {
			return true
		}
	}
	return false
}

func weekIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}
