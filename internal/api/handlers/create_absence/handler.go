package create_absence

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	createAbsence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_absence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgBlockedByBooking   = "на это время у сотрудника есть бронирования"
	msgOverlapConflict    = "период пересекается с другим отсутствием"
	msgInvalidInput       = "некорректный период отсутствия"
)

type Handler struct {
	useCase   CreateAbsenceUseCase
	validator Validator
	logger    Logger
}

func NewHandler(useCase CreateAbsenceUseCase, validator Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/employees/{employeeId}/absences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "POST /tenants/{id}/employees/{id}/absences"

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

	var req CreateAbsenceRequest
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

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID, employeeID))
	if err != nil {
		if handlers.RespondScopeError(w, err) {
			h.logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, employeeID, err)
			return
		}

		switch {
		case errors.Is(err, createAbsence.ErrBlockedByBooking):
			h.logger.Warn("%s - Blocked by booking: employee_id=%d, error=%v", op, employeeID, err)
			handlers.RespondRejection(w, msgBlockedByBooking, err)

		case errors.Is(err, createAbsence.ErrOverlapConflict):
			h.logger.Warn("%s - Overlaps another absence: employee_id=%d", op, employeeID)
			handlers.RespondConflict(w, msgOverlapConflict)

		case errors.Is(err, createAbsence.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s - Failed to create absence: tenant_id=%d, employee_id=%d, error=%v",
				op, tenantID, employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Absence created successfully: absence_id=%s, tenant_id=%d, employee_id=%d",
		op, result.ID, tenantID, employeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
