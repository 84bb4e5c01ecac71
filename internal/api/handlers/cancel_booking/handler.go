package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgCannotCancel       = "бронирование не может быть отменено"
)

type Handler struct {
	authorizer handlers.Authorizer
	service    BookingService
	validator  Validator
	logger     Logger
}

func NewHandler(authorizer handlers.Authorizer, service BookingService, validator Validator, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		service:    service,
		validator:  validator,
		logger:     logger,
	}
}

// Handle PATCH /api/v1/tenants/{tenantId}/employees/{employeeId}/bookings/{bookingId}/cancel
// Тело запроса необязательно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "PATCH /tenants/{id}/employees/{id}/bookings/{id}/cancel"

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	scope, ok := handlers.ResolveScope(w, r, h.authorizer, h.logger, op)
	if !ok {
		return
	}

	booking, err := h.service.Cancel(r.Context(), scope, bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: %s, booking_id=%d", op, scope, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("%s - Cannot cancel: %s, booking_id=%d", op, scope, bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("%s - Failed to cancel booking: %s, booking_id=%d, error=%v", op, scope, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking cancelled successfully: %s, booking_id=%d", op, scope, bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
