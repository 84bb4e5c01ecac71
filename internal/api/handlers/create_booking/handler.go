package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgUnauthorized       = "не указан пользователь"
	msgBlockedByTimeOff   = "сотрудник отсутствует в выбранное время"
	msgBlockedByBooking   = "выбранное время уже занято"
	msgServiceNotFound    = "услуга не найдена"
	msgNotPerformed       = "сотрудник не оказывает эту услугу"
	msgInvalidTime        = "время начала бронирования в прошлом"
	msgTooLateToBook      = "слишком поздно для бронирования этого времени"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgOutsideHours       = "сотрудник не работает в выбранное время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase   CreateBookingUseCase
	validator Validator
	logger    Logger
}

func NewHandler(useCase CreateBookingUseCase, validator Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/employees/{employeeId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "POST /tenants/{id}/employees/{id}/bookings"

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

	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - User ID not found in context", op)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
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

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID, employeeID, customerID))
	if err != nil {
		if handlers.RespondScopeError(w, err) {
			h.logger.Warn("%s - Scope rejected: tenant_id=%d, employee_id=%d, error=%v", op, tenantID, employeeID, err)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrBlockedByTimeOff):
			h.logger.Warn("%s - Blocked by time off: employee_id=%d, error=%v", op, employeeID, err)
			handlers.RespondRejection(w, msgBlockedByTimeOff, err)

		case errors.Is(err, createBooking.ErrBlockedByBooking):
			h.logger.Warn("%s - Blocked by booking: employee_id=%d, error=%v", op, employeeID, err)
			handlers.RespondRejection(w, msgBlockedByBooking, err)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: tenant_id=%d, service_id=%d", op, tenantID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotPerformed):
			h.logger.Warn("%s - Service not performed: employee_id=%d, service_id=%d", op, employeeID, req.ServiceID)
			handlers.RespondBadRequest(w, msgNotPerformed)

		case errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("%s - Start in the past: employee_id=%d", op, employeeID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("%s - Too late to book: employee_id=%d", op, employeeID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("%s - Date too far in future: employee_id=%d", op, employeeID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("%s - Outside working hours: employee_id=%d, start=%s", op, employeeID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s - Failed to create booking: tenant_id=%d, employee_id=%d, customer_id=%d, error=%v",
				op, tenantID, employeeID, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking created successfully: booking_id=%d, tenant_id=%d, employee_id=%d, customer_id=%d",
		op, result.ID, tenantID, employeeID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
