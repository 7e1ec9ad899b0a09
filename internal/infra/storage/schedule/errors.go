package schedule

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("schedule.repository: trainer not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("schedule.repository: slot not found")

	// ErrDecode возвращается, когда документ не удалось привести к модели
	ErrDecode = errors.New("schedule.repository: failed to decode document")

	// ErrStore возвращается при ошибках хранилища документов
	ErrStore = errors.New("schedule.repository: store error")
)
