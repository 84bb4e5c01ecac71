package staffservice

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в тенанте
	ErrEmployeeNotFound = errors.New("staffservice client: employee not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в тенанте
	ErrServiceNotFound = errors.New("staffservice client: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
