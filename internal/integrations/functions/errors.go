package functions

import "errors"

var (
	// ErrInternal возвращается при ошибках транспорта (сеть, таймаут, сборка запроса)
	ErrInternal = errors.New("functions client: internal error")

	// ErrInvalidResponse возвращается, когда в ответе нет ожидаемых полей
	ErrInvalidResponse = errors.New("functions client: unexpected server response")

	// ErrServer возвращается, когда удаленная процедура сообщила об ошибке приложения
	// Текст ошибки доступен через *ServerError
	ErrServer = errors.New("functions client: server error")
)

// ServerError ошибка приложения, возвращенная процедурой; Message показывается пользователю как есть
type ServerError struct {
	Procedure string
	Status    string
	Message   string
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return ErrServer
}
