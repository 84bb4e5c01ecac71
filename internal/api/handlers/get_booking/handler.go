package get_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

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

// Handle GET /api/v1/tenants/{tenantId}/employees/{employeeId}/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /tenants/{id}/employees/{id}/bookings/{id}"

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	// Бронирование другого сотрудника или тенанта для этой области не существует
	booking, err := h.service.GetByID(r.Context(), scope, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: %s, booking_id=%d", op, scope, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to get booking: %s, booking_id=%d, error=%v", op, scope, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking retrieved successfully: %s, booking_id=%d", op, scope, bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
