package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
)

// Service сервис для работы с бронированиями сотрудника
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование сотрудника по ID
func (s *Service) GetByID(ctx context.Context, scope tenancy.Scope, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, scope.TenantID(), scope.EmployeeID(), id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found for %s", id, scope)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListForEmployee получает бронирования сотрудника за период
// По умолчанию возвращаются только активные бронирования
func (s *Service) ListForEmployee(ctx context.Context, scope tenancy.Scope, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListForEmployee(ctx, domain.EmployeeBookingsFilter{
		TenantID:        scope.TenantID(),
		EmployeeID:      scope.EmployeeID(),
		From:            req.From,
		To:              req.To,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("ListForEmployee: repository error for %s: %v", scope, err)
		return nil, fmt.Errorf("%w: ListForEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForEmployee: found %d bookings for %s", len(bookings), scope)
	return models.FromDomainBookingList(bookings), nil
}

// ActiveIntervals возвращает защищённые интервалы активных бронирований, пересекающиеся с window.
// Внутри транзакции вызывающего строки блокируются (FOR UPDATE).
func (s *Service) ActiveIntervals(ctx context.Context, scope tenancy.Scope, window domain.Interval) ([]domain.Interval, error) {
	bookings, err := s.bookingRepo.ListForEmployee(ctx, domain.EmployeeBookingsFilter{
		TenantID:   scope.TenantID(),
		EmployeeID: scope.EmployeeID(),
		From:       &window.Start,
		To:         &window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ActiveIntervals - repository error: %v", ErrInternal, err)
	}

	return domain.ActiveProtectedIntervals(bookings), nil
}

// Cancel отменяет бронирование и освобождает его время.
// Отменить можно только бронирование в статусе pending или confirmed.
func (s *Service) Cancel(ctx context.Context, scope tenancy.Scope, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d for %s", bookingID, scope)

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var cancelled *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, scope.TenantID(), scope.EmployeeID(), bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, booking.Status)
		}

		if err := s.bookingRepo.Cancel(ctx, scope.TenantID(), scope.EmployeeID(), bookingID, req.Reason); err != nil {
			if errors.Is(err, bookingRepo.ErrCannotCancel) {
				return ErrCannotCancel
			}
			return fmt.Errorf("%w: Cancel - update booking: %v", ErrInternal, err)
		}

		cancelled, err = s.bookingRepo.GetByID(ctx, scope.TenantID(), scope.EmployeeID(), bookingID)
		if err != nil {
			return fmt.Errorf("%w: Cancel - reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%d: %v", bookingID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("Cancel: booking id=%d: %v", bookingID, err)
			return nil, err
		default:
			s.logger.Error("Cancel: transaction failed for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Cancel - transaction: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(cancelled), nil
}
