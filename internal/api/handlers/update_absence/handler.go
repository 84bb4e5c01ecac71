package update_absence

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	updateAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_absence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidAbsenceID   = "некорректный ID отсутствия"
	msgNotFound           = "отсутствие не найдено"
	msgBlockedByBooking   = "на это время у сотрудника есть бронирования"
	msgOverlapConflict    = "период пересекается с другим отсутствием"
	msgInvalidInput       = "некорректный период отсутствия"
)

type Handler struct {
	useCase   UpdateAbsenceUseCase
	validator Validator
	logger    Logger
}

func NewHandler(useCase UpdateAbsenceUseCase, validator Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle PUT /api/v1/tenants/{tenantId}/employees/{employeeId}/absences/{absenceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /tenants/{id}/employees/{id}/absences/{id}"

	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("%s - Invalid tenant ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	employeeID, err := handlers.PathInt64(r, "employeeId")
	if err != nil {
		h.logger.Warn("%s - Invalid employee ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	absenceID, err := handlers.PathUUID(r, "absenceId")
	if err != nil {
		h.logger.Warn("%s - Invalid absence ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidAbsenceID)
		return
	}

	var req UpdateAbsenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID, employeeID, absenceID))
	if err != nil {
		if handlers.RespondScopeError(w, err) {
			h.logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, employeeID, err)
			return
		}

		switch {
		case errors.Is(err, updateAbsence.ErrAbsenceNotFound):
			h.logger.Warn("%s - Absence not found: absence_id=%s", op, absenceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAbsence.ErrBlockedByBooking):
			h.logger.Warn("%s - Blocked by booking: absence_id=%s, error=%v", op, absenceID, err)
			handlers.RespondRejection(w, msgBlockedByBooking, err)

		case errors.Is(err, updateAbsence.ErrOverlapConflict):
			h.logger.Warn("%s - Overlaps another absence: absence_id=%s", op, absenceID)
			handlers.RespondConflict(w, msgOverlapConflict)

		case errors.Is(err, updateAbsence.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s - Failed to update absence: absence_id=%s, error=%v", op, absenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Absence updated successfully: absence_id=%s, tenant_id=%d, employee_id=%d",
		op, absenceID, tenantID, employeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
