package credit

import "errors"

var (
	// ErrCreditNotFound возвращается, когда кредит не найден
	ErrCreditNotFound = errors.New("credit.repository: credit not found")

	// ErrDecode возвращается, когда документ кредита не удалось привести к модели
	ErrDecode = errors.New("credit.repository: failed to decode credit")

	// ErrStore возвращается при ошибках хранилища документов
	ErrStore = errors.New("credit.repository: store error")
)
