package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	authorizer handlers.Authorizer
	service    BookingService
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service BookingService, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		logger:     logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/employees/{employeeId}/bookings
// Query params: from, to (RFC 3339), includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /tenants/{id}/employees/{id}/bookings"

	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("%s - Invalid query: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	result, err := h.service.ListForEmployee(r.Context(), scope, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("%s - Failed to list bookings: %s, error=%v", op, scope, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Bookings retrieved successfully: %s, count=%d", op, scope, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	from, err := handlers.QueryTime(r, "from")
	if err != nil {
		return nil, err
	}

	to, err := handlers.QueryTime(r, "to")
	if err != nil {
		return nil, err
	}

	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		return nil, err
	}

	return &models.ListBookingsRequest{
		From:            from,
		To:              to,
		IncludeInactive: includeInactive,
	}, nil
}
