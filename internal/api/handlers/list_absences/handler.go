package list_absences

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/absences/models"
)

const msgInvalidParams = "некорректные параметры запроса, from и to передаются вместе"

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

// Handle GET /api/v1/tenants/{tenantId}/employees/{employeeId}/absences
// Query params: from, to (RFC 3339, опционально, только вместе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /tenants/{id}/employees/{id}/absences"

	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("%s - Invalid query: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	list, err := h.service.ListForEmployee(r.Context(), scope, filter)
	if err != nil {
		switch {
		case errors.Is(err, absences.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("%s - Failed to list absences: %s, error=%v", op, scope, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Absences retrieved successfully: %s, count=%d", op, scope, len(list))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAbsenceList(list))
}

func parseFilter(r *http.Request) (*domain.AbsenceRangeFilter, error) {
	from, err := handlers.QueryTime(r, "from")
	if err != nil {
		return nil, err
	}

	to, err := handlers.QueryTime(r, "to")
	if err != nil {
		return nil, err
	}

	switch {
	case from == nil && to == nil:
		return nil, nil
	case from == nil || to == nil:
		return nil, fmt.Errorf("%w: from and to must be passed together", handlers.ErrInvalidParam)
	}

	return &domain.AbsenceRangeFilter{From: *from, To: *to}, nil
}
