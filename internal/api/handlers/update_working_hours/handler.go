package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	authorizer handlers.Authorizer
	service    WorkingHoursService
	validator  Validator
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service WorkingHoursService, validator Validator, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		validator:  validator,
		logger:     logger,
	}
}

// Handle PUT /api/v1/tenants/{tenantId}/employees/{employeeId}/working-hours
// Неделя заменяется целиком; при ошибке валидации ничего не сохраняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /tenants/{id}/employees/{id}/working-hours"

	var req UpdateWorkingHoursRequest
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

	days, err := models.ToDomainDays(req.Days)
	if err != nil {
		h.logger.Warn("%s - Invalid week: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	week, err := h.service.SetWeek(r.Context(), scope, days)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWorkingHours):
			h.logger.Warn("%s - Invalid working hours: %s, error=%v", op, scope, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("%s - Failed to update working hours: %s, error=%v", op, scope, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Working hours updated successfully: %s", op, scope)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainWeek(scope.EmployeeID(), week, false))
}
