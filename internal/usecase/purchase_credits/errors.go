package purchase_credits

import "errors"

var (
	// ErrUnknownCreditType возвращается для типа кредита без цены
	ErrUnknownCreditType = errors.New("purchase_credits: unknown credit type")

	// ErrPaymentCancelled пользователь закрыл платежную форму. Для клиента это не ошибка.
	ErrPaymentCancelled = errors.New("purchase_credits: payment cancelled")

	// ErrPaymentFailed платежная форма сообщила об отказе
	ErrPaymentFailed = errors.New("purchase_credits: payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("purchase_credits: invalid input data")
)
