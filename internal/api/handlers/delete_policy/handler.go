package delete_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidTenantID   = "некорректный ID тенанта"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgNotFound          = "политика не найдена"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/tenants/{tenantId}/policy
// Query params: employeeId (опционально). После удаления действует политика уровнем выше.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /tenants/{id}/policy"

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

	if err := h.service.Delete(r.Context(), tenantID, employeeID); err != nil {
		switch {
		case errors.Is(err, policy.ErrPolicyNotFound):
			h.logger.Warn("%s - Policy not found: tenant_id=%d, employee_id=%d", op, tenantID, ptr.Deref(employeeID, 0))
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to delete policy: tenant_id=%d, error=%v", op, tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Policy deleted successfully: tenant_id=%d, employee_id=%d", op, tenantID, ptr.Deref(employeeID, 0))
	handlers.RespondNoContent(w)
}
