package absences

import "errors"

var (
	// ErrAbsenceNotFound возвращается, когда отсутствие не найдено у сотрудника
	ErrAbsenceNotFound = errors.New("absences: absence not found")

	// ErrOverlapConflict возвращается, когда интервал пересекается с другим отсутствием сотрудника
	ErrOverlapConflict = errors.New("absences: period overlaps an existing absence")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("absences: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("absences: internal error")
)
