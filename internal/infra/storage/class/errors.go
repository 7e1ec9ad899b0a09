package class

import "errors"

var (
	// ErrClassNotFound возвращается, когда групповое занятие не найдено
	ErrClassNotFound = errors.New("class.repository: class not found")

	// ErrParticipantNotFound возвращается, когда пользователь не записан на занятие
	ErrParticipantNotFound = errors.New("class.repository: participant not found")

	// ErrDecode возвращается, когда документ занятия не удалось привести к модели
	ErrDecode = errors.New("class.repository: failed to decode class")

	// ErrStore возвращается при ошибках хранилища документов
	ErrStore = errors.New("class.repository: store error")
)
