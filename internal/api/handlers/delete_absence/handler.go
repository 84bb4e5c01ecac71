package delete_absence

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences"
)

const (
	msgInvalidAbsenceID = "некорректный ID отсутствия"
	msgNotFound         = "отсутствие не найдено"
)

type Handler struct {
	authorizer handlers.Authorizer
	service    AbsenceService
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service AbsenceService, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		logger:     logger,
	}
}

// Handle DELETE /api/v1/tenants/{tenantId}/employees/{employeeId}/absences/{absenceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /tenants/{id}/employees/{id}/absences/{id}"

	absenceID, err := handlers.PathUUID(r, "absenceId")
	if err != nil {
		h.logger.Warn("%s - Invalid absence ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidAbsenceID)
		return
	}

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), scope, absenceID); err != nil {
		switch {
		case errors.Is(err, absences.ErrAbsenceNotFound):
			h.logger.Warn("%s - Absence not found: %s, absence_id=%s", op, scope, absenceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to delete absence: %s, absence_id=%s, error=%v", op, scope, absenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Absence deleted successfully: %s, absence_id=%s", op, scope, absenceID)
	handlers.RespondNoContent(w)
}
