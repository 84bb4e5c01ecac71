package update_working_hours

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

// UpdateWorkingHoursRequest HTTP request model: неделя целиком, понедельник..воскресенье
type UpdateWorkingHoursRequest struct {
	Days []models.DayDTO `json:"days" validate:"required,len=7"`
}
