package get_working_hours

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type Handler struct {
	authorizer handlers.Authorizer
	service    WorkingHoursService
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		logger:     logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/employees/{employeeId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /tenants/{id}/employees/{id}/working-hours"

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	week, isDefault, err := h.service.GetWeek(r.Context(), scope)
	if err != nil {
		h.logger.Error("%s - Failed to get working hours: %s, error=%v", op, scope, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Working hours retrieved successfully: %s, is_default=%t", op, scope, isDefault)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainWeek(scope.EmployeeID(), week, isDefault))
}
