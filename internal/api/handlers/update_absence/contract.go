package update_absence

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences/models"
	updateAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_absence"
)

type UpdateAbsenceUseCase interface {
	Execute(ctx context.Context, req *updateAbsence.Request) (*models.AbsenceResponse, error)
}

type Validator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
