package classes

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("classes: class not found")

	// ErrAdminRequired возвращается, когда операция доступна только администратору
	ErrAdminRequired = errors.New("classes: admin role required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("classes: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("classes: internal error")
)
