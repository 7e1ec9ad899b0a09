package events

import "errors"

var (
	// ErrInvalidConfig возвращается при пустом списке брокеров или топике
	ErrInvalidConfig = errors.New("events: invalid kafka configuration")

	// ErrEncode возвращается, когда событие не удалось сериализовать
	ErrEncode = errors.New("events: failed to encode event")

	// ErrClosed возвращается при публикации после Close
	ErrClosed = errors.New("events: publisher closed")
)
