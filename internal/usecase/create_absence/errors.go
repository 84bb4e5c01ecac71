package create_absence

import "errors"

var (
	// ErrBlockedByBooking возвращается, когда отсутствие пересекается с активным бронированием
	ErrBlockedByBooking = errors.New("create_absence: blocked by booking")

	// ErrOverlapConflict возвращается, когда отсутствие пересекается с другим отсутствием
	ErrOverlapConflict = errors.New("create_absence: period overlaps an existing absence")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_absence: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_absence: internal error")
)
