package docstore

import "errors"

var (
	// ErrNotFound возвращается, когда документ не найден
	ErrNotFound = errors.New("docstore: document not found")

	// ErrInvalidPath возвращается при пустой коллекции или ID
	ErrInvalidPath = errors.New("docstore: invalid document path")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("docstore: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("docstore: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("docstore: failed to scan row")

	// ErrEncode возвращается, когда документ не удалось сериализовать или разобрать
	ErrEncode = errors.New("docstore: failed to encode document")
)
