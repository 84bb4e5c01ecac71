package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotPerformed возвращается, когда сотрудник не оказывает услугу
	ErrServiceNotPerformed = errors.New("create_booking: employee does not perform this service")

	// ErrInvalidTime возвращается, когда начало бронирования в прошлом
	ErrInvalidTime = errors.New("create_booking: booking start is in the past")

	// ErrTooLateToBook возвращается, когда бронирование нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда время с буферами выходит за рабочие окна сотрудника
	ErrOutsideWorkingHours = errors.New("create_booking: outside of working hours")

	// ErrBlockedByTimeOff возвращается, когда время пересекается с отсутствием сотрудника
	ErrBlockedByTimeOff = errors.New("create_booking: blocked by time off")

	// ErrBlockedByBooking возвращается, когда время пересекается с другим бронированием
	ErrBlockedByBooking = errors.New("create_booking: blocked by booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
