package update_absence

import "errors"

var (
	// ErrAbsenceNotFound возвращается, когда отсутствие не найдено у сотрудника
	ErrAbsenceNotFound = errors.New("update_absence: absence not found")

	// ErrBlockedByBooking возвращается, когда новый интервал пересекается с активным бронированием
	ErrBlockedByBooking = errors.New("update_absence: blocked by booking")

	// ErrOverlapConflict возвращается, когда новый интервал пересекается с другим отсутствием
	ErrOverlapConflict = errors.New("update_absence: period overlaps an existing absence")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_absence: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_absence: internal error")
)
