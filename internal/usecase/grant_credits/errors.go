package grant_credits

import "errors"

var (
	// ErrAdminRequired возвращается, когда вызывающий не администратор
	ErrAdminRequired = errors.New("grant_credits: admin role required")

	// ErrUserNotFound возвращается, когда получатель не найден
	ErrUserNotFound = errors.New("grant_credits: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("grant_credits: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("grant_credits: internal error")
)
