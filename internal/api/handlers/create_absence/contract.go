package create_absence

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences/models"
	createAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_absence"
)

type CreateAbsenceUseCase interface {
	Execute(ctx context.Context, req *createAbsence.Request) (*models.AbsenceResponse, error)
}

type Validator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
