package book_lesson

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден в расписании тренера
	ErrSlotNotFound = errors.New("book_lesson: slot not found")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	ErrSlotUnavailable = errors.New("book_lesson: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_lesson: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_lesson: internal error")
)
