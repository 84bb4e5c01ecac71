package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда политика уровня не найдена
	ErrPolicyNotFound = errors.New("policy: policy not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("policy: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("policy: internal error")
)
