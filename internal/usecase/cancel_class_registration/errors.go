package cancel_class_registration

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("cancel_class_registration: class not found")

	// ErrNotRegistered возвращается, когда пользователь не записан на занятие
	ErrNotRegistered = errors.New("cancel_class_registration: not registered for this class")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_class_registration: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_class_registration: internal error")
)
