package workinghours

import "errors"

var (
	// ErrWeekNotFound возвращается, когда для сотрудника не сохранена неделя
	ErrWeekNotFound = errors.New("workinghours.repository: week not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")

	// ErrEncode возвращается при ошибке (де)сериализации недели в JSONB
	ErrEncode = errors.New("workinghours.repository: failed to encode week")
)
