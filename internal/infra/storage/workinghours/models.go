package workinghours

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// dayRecord представление дня в колонке week (JSONB)
type dayRecord struct {
	Weekday string         `json:"weekday"`
	Enabled bool           `json:"enabled"`
	Windows []windowRecord `json:"windows"`
}

type windowRecord struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

func encodeWeek(week domain.WorkingWeek) ([]byte, error) {
	days := week.Days()
	records := make([]dayRecord, 0, len(days))
	for _, d := range days {
		windows := make([]windowRecord, 0, len(d.Windows))
		for _, w := range d.Windows {
			windows = append(windows, windowRecord{Start: w.Start, End: w.End})
		}
		records = append(records, dayRecord{Weekday: d.Weekday.String(), Enabled: d.Enabled, Windows: windows})
	}
	return json.Marshal(records)
}

// decodeWeek восстанавливает неделю через NewWorkingWeek, чтобы повреждённые данные не прошли мимо валидации
func decodeWeek(raw []byte) (domain.WorkingWeek, error) {
	var records []dayRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return domain.WorkingWeek{}, err
	}
	if len(records) != len(domain.WeekOrder) {
		return domain.WorkingWeek{}, fmt.Errorf("expected %d days, got %d", len(domain.WeekOrder), len(records))
	}

	var days [7]domain.DayConfig
	for i, rec := range records {
		weekday, err := parseWeekday(rec.Weekday)
		if err != nil {
			return domain.WorkingWeek{}, err
		}
		var windows []domain.TimeWindow
		for _, w := range rec.Windows {
			windows = append(windows, domain.TimeWindow{Start: w.Start, End: w.End})
		}
		days[i] = domain.DayConfig{Weekday: weekday, Enabled: rec.Enabled, Windows: windows}
	}

	return domain.NewWorkingWeek(days)
}

func parseWeekday(s string) (time.Weekday, error) {
	for _, wd := range domain.WeekOrder {
		if wd.String() == s {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
