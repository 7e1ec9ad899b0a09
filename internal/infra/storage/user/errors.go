package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда профиль пользователя не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDecode возвращается, когда документ не удалось привести к модели
	ErrDecode = errors.New("user.repository: failed to decode document")

	// ErrStore возвращается при ошибках хранилища документов
	ErrStore = errors.New("user.repository: store error")
)
