package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDecode возвращается, когда документ бронирования не удалось привести к модели
	ErrDecode = errors.New("booking.repository: failed to decode booking")

	// ErrStore возвращается при ошибках хранилища документов
	ErrStore = errors.New("booking.repository: store error")
)
