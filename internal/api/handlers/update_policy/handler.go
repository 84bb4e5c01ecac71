package update_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
)

const (
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	authorizer handlers.Authorizer
	service    PolicyService
	validator  Validator
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service PolicyService, validator Validator, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		validator:  validator,
		logger:     logger,
	}
}

// Handle PUT /api/v1/tenants/{tenantId}/policy
// Непереданные поля сохраняют текущее значение уровня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /tenants/{id}/policy"

	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("%s - Invalid tenant ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req UpdatePolicyRequest
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

	// Персональную политику можно задать только сотруднику этого тенанта
	if req.EmployeeID != nil {
		if _, err := h.authorizer.Authorize(r.Context(), tenantID, *req.EmployeeID); err != nil {
			h.logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, *req.EmployeeID, err)
			if !handlers.RespondScopeError(w, err) {
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(tenantID))
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("%s - Invalid policy: tenant_id=%d, error=%v", op, tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("%s - Failed to update policy: tenant_id=%d, error=%v", op, tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Policy updated successfully: tenant_id=%d, policy_id=%d", op, tenantID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
