package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTenantID   = "некорректный ID тенанта"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgInvalidServiceID  = "ID услуги обязателен и должен быть положительным"
	msgInvalidRange      = "некорректный интервал, ожидается RFC 3339 и from < to"
	msgServiceNotFound   = "услуга не найдена"
	msgNotPerformed      = "сотрудник не оказывает эту услугу"
)

type Handler struct {
	useCase SlotsFinder
	logger  Logger
}

func NewHandler(useCase SlotsFinder, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/employees/{employeeId}/available-slots
// Query params: serviceId (required), from, to (optional, RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /tenants/{id}/employees/{id}/available-slots"

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

	serviceID, err := handlers.QueryInt64(r, "serviceId")
	if err != nil || serviceID == nil {
		h.logger.Warn("%s - Invalid service ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	from, err := handlers.QueryTime(r, "from")
	if err != nil {
		h.logger.Warn("%s - Invalid from: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := handlers.QueryTime(r, "to")
	if err != nil {
		h.logger.Warn("%s - Invalid to: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TenantID:   tenantID,
		EmployeeID: employeeID,
		ServiceID:  *serviceID,
		From:       from,
		To:         to,
	})
	if err != nil {
		if handlers.RespondScopeError(w, err) {
			h.logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, employeeID, err)
			return
		}

		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: tenant_id=%d, service_id=%d", op, tenantID, *serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotPerformed):
			h.logger.Warn("%s - Service not performed: employee_id=%d, service_id=%d", op, employeeID, *serviceID)
			handlers.RespondBadRequest(w, msgNotPerformed)

		default:
			h.logger.Error("%s - Failed to get slots: tenant_id=%d, employee_id=%d, service_id=%d, error=%v",
				op, tenantID, employeeID, *serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Slots retrieved successfully: tenant_id=%d, employee_id=%d, service_id=%d, slots_count=%d",
		op, tenantID, employeeID, *serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
