package domain

import "errors"

var (
	// ErrInvalidInterval возвращается при start >= end (ошибка программиста, не бизнес-отказ)
	ErrInvalidInterval = errors.New("domain: invalid interval")

	// ErrInvalidWorkingHours возвращается при некорректной недельной конфигурации рабочих часов
	ErrInvalidWorkingHours = errors.New("domain: invalid working hours")

	// ErrInvalidBookingStatus возвращается при неизвестном статусе бронирования
	ErrInvalidBookingStatus = errors.New("domain: invalid booking status")
)
