package get_policy

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
)

const (
	msgInvalidTenantID   = "некорректный ID тенанта"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
)

type Handler struct {
	authorizer handlers.Authorizer
	service    PolicyService
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service PolicyService, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		logger:     logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/policy
// Query params: employeeId (опционально).
// Без employeeId возвращает все политики тенанта, с ним - действующую политику сотрудника.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /tenants/{id}/policy"

	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("%s - Invalid tenant ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	employeeID, err := handlers.QueryInt64(r, "employeeId")
	if err != nil {
		h.logger.Warn("%s - Invalid employee ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if employeeID == nil {
		list, err := h.service.List(r.Context(), tenantID)
		if err != nil {
			h.logger.Error("%s - Failed to list policies: tenant_id=%d, error=%v", op, tenantID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("%s - Policies retrieved successfully: tenant_id=%d, count=%d", op, tenantID, len(list.Policies))
		handlers.RespondJSON(w, http.StatusOK, list)
		return
	}

	scope, err := h.authorizer.Authorize(r.Context(), tenantID, *employeeID)
	if err != nil {
		h.logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, *employeeID, err)
		if !handlers.RespondScopeError(w, err) {
			handlers.RespondInternalError(w)
		}
		return
	}

	// Политика не найдена ни на одном уровне - отдаём значения по умолчанию
	effective, err := h.service.Get(r.Context(), scope)
	if err != nil {
		h.logger.Error("%s - Failed to get policy: %s, error=%v", op, scope, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Effective policy retrieved successfully: %s, policy_id=%d", op, scope, effective.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainPolicy(effective))
}
