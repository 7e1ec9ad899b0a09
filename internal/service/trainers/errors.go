package trainers

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("trainers: trainer not found")

	// ErrAdminRequired возвращается, когда операция доступна только администратору
	ErrAdminRequired = errors.New("trainers: admin role required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("trainers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trainers: internal error")
)
