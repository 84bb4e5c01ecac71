package tenancy

import "errors"

var (
	// ErrEmployeeNotFound сотрудник не найден
	ErrEmployeeNotFound = errors.New("tenancy: employee not found")

	// ErrForeignEmployee сотрудник принадлежит другому тенанту
	ErrForeignEmployee = errors.New("tenancy: employee belongs to another tenant")

	// ErrEmployeeInactive сотрудник деактивирован
	ErrEmployeeInactive = errors.New("tenancy: employee is inactive")

	// ErrInvalidScope некорректные идентификаторы тенанта или сотрудника
	ErrInvalidScope = errors.New("tenancy: invalid scope")

	// ErrDirectoryUnavailable справочник сотрудников недоступен
	ErrDirectoryUnavailable = errors.New("tenancy: employee directory unavailable")
)
