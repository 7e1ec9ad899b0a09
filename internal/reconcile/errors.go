package reconcile

import "errors"

var (
	// ErrEmptyRecord возвращается, когда документ отсутствует или пуст
	ErrEmptyRecord = errors.New("reconcile: empty record")

	// ErrMissingField возвращается, когда в документе нет обязательного поля
	ErrMissingField = errors.New("reconcile: missing required field")
)
