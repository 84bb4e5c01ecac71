package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WindowDTO рабочее окно дня
type WindowDTO struct {
	Start types.TimeString `json:"start"` // "09:00"
	End   types.TimeString `json:"end"`   // "18:00", допускается "24:00"
}

// DayDTO конфигурация дня недели
type DayDTO struct {
	Weekday string      `json:"weekday"` // "monday".."sunday"
	Enabled bool        `json:"enabled"`
	Windows []WindowDTO `json:"windows"`
}

// WeekResponse неделя сотрудника
type WeekResponse struct {
	EmployeeID int64    `json:"employeeId"`
	IsDefault  bool     `json:"isDefault"` // true, если неделя не сохранена и возвращены значения по умолчанию
	Days       []DayDTO `json:"days"`
}

// FromDomainWeek конвертирует неделю в DTO
func FromDomainWeek(employeeID int64, week domain.WorkingWeek, isDefault bool) *WeekResponse {
	days := week.Days()
	resp := &WeekResponse{
		EmployeeID: employeeID,
		IsDefault:  isDefault,
		Days:       make([]DayDTO, 0, len(days)),
	}
	for _, d := range days {
		windows := make([]WindowDTO, 0, len(d.Windows))
		for _, w := range d.Windows {
			windows = append(windows, WindowDTO{Start: w.Start, End: w.End})
		}
		resp.Days = append(resp.Days, DayDTO{
			Weekday: strings.ToLower(d.Weekday.String()),
			Enabled: d.Enabled,
			Windows: windows,
		})
	}
	return resp
}

// ToDomainDays конвертирует DTO недели (ровно 7 дней, понедельник..воскресенье) в конфигурацию дней
func ToDomainDays(days []DayDTO) ([7]domain.DayConfig, error) {
	var result [7]domain.DayConfig
	if len(days) != len(domain.WeekOrder) {
		return result, fmt.Errorf("%w: expected %d days, got %d", domain.ErrInvalidWorkingHours, len(domain.WeekOrder), len(days))
	}

	for i, d := range days {
		weekday, err := ParseWeekday(d.Weekday)
		if err != nil {
			return result, err
		}
		var windows []domain.TimeWindow
		for _, w := range d.Windows {
			windows = append(windows, domain.TimeWindow{Start: w.Start, End: w.End})
		}
		result[i] = domain.DayConfig{Weekday: weekday, Enabled: d.Enabled, Windows: windows}
	}
	return result, nil
}

// ParseWeekday разбирает день недели без учёта регистра ("monday", "Monday")
func ParseWeekday(s string) (time.Weekday, error) {
	for _, wd := range domain.WeekOrder {
		if strings.EqualFold(wd.String(), strings.TrimSpace(s)) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidWorkingHours, s)
}
