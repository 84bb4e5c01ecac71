package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

type BookingService interface {
	Cancel(ctx context.Context, scope tenancy.Scope, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

type Validator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
