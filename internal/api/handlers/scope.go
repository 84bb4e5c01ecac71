package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

const (
	msgEmployeeNotFound     = "сотрудник не найден"
	msgForeignEmployee      = "сотрудник не принадлежит тенанту"
	msgEmployeeInactive     = "сотрудник неактивен"
	msgInvalidScope         = "некорректный ID тенанта или сотрудника"
	msgDirectoryUnavailable = "справочник сотрудников недоступен"
)

// RespondScopeError отвечает на ошибку авторизации области сотрудника.
// Возвращает false, если err не относится к tenancy.
func RespondScopeError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, tenancy.ErrInvalidScope):
		RespondBadRequest(w, msgInvalidScope)
	case errors.Is(err, tenancy.ErrEmployeeNotFound):
		RespondNotFound(w, msgEmployeeNotFound)
	case errors.Is(err, tenancy.ErrForeignEmployee):
		RespondForbidden(w, msgForeignEmployee)
	case errors.Is(err, tenancy.ErrEmployeeInactive):
		RespondError(w, http.StatusUnprocessableEntity, msgEmployeeInactive)
	case errors.Is(err, tenancy.ErrDirectoryUnavailable):
		RespondError(w, http.StatusBadGateway, msgDirectoryUnavailable)
	default:
		return false
	}
	return true
}

// Authorizer выдаёт область сотрудника после проверки принадлежности тенанту
type Authorizer interface {
	Authorize(ctx context.Context, tenantID, employeeID int64) (tenancy.Scope, error)
}

type warnLogger interface {
	Warn(format string, v ...interface{})
}

// ResolveScope читает {tenantId} и {employeeId} из пути и авторизует область.
// При ошибке сам отвечает клиенту и возвращает false.
func ResolveScope(w http.ResponseWriter, r *http.Request, authorizer Authorizer, logger warnLogger, op string) (tenancy.Scope, bool) {
	tenantID, err := PathInt64(r, "tenantId")
	if err != nil {
		logger.Warn("%s - Invalid tenant ID: %v", op, err)
		RespondBadRequest(w, msgInvalidScope)
		return tenancy.Scope{}, false
	}

	employeeID, err := PathInt64(r, "employeeId")
	if err != nil {
		logger.Warn("%s - Invalid employee ID: %v", op, err)
		RespondBadRequest(w, msgInvalidScope)
		return tenancy.Scope{}, false
	}

	scope, err := authorizer.Authorize(r.Context(), tenantID, employeeID)
	if err != nil {
		logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, employeeID, err)
		if !RespondScopeError(w, err) {
			RespondInternalError(w)
		}
		return tenancy.Scope{}, false
	}

	return scope, true
}
